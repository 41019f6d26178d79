package util

func Ptr[V string | bool | int](v V) *V {
	return &v
}
