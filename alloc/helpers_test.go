package alloc

import (
	"os"
	"reflect"
)

func typeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

func pageSizeForTest() int {
	return os.Getpagesize()
}
