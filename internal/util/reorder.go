package util

// Reorder memindahkan elemen dari index from ke index to tanpa mengubah slice input.
// Index di luar jangkauan mengembalikan salinan apa adanya.
func Reorder[T any](list []T, from, to int) []T {
	out := make([]T, len(list))
	copy(out, list)
	if from == to || from < 0 || to < 0 || from >= len(list) || to >= len(list) {
		return out
	}

	item := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = item
	return out
}
