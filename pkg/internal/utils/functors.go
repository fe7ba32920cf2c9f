// functors.go file
package utils

// Filter returns a new slice holding only the elements of elems that satisfy f().
func Filter[T any](elems []T, f func(T) bool) []T {
	var result []T
	for _, v := range elems {
		if f(v) {
			result = append(result, v)
		}
	}
	return result
}
