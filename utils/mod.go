package utils

type Number interface {
	~int | ~int32 | ~int64 | ~float64
}

func Sum[T Number](slice []T) T {
	var total T
	for _, v := range slice {
		total += v
	}
	return total
}
