package util

// Map applies fn to every element of the slice and returns the results.
func Map[A any, B any](elements []A, fn func(a A, i uint64) B) []B {
	out := make([]B, len(elements))
	for i, e := range elements {
		out[i] = fn(e, uint64(i))
	}
	return out
}

// Chunk splits a slice into consecutive chunks of at most size elements.
// The last chunk may be smaller. A non-positive size yields a single chunk.
func Chunk[T any](elements []T, size int) [][]T {
	if len(elements) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]T{elements}
	}
	chunks := make([][]T, 0, (len(elements)+size-1)/size)
	for start := 0; start < len(elements); start += size {
		end := start + size
		if end > len(elements) {
			end = len(elements)
		}
		chunks = append(chunks, elements[start:end])
	}
	return chunks
}
