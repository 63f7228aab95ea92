package assert

import "github.com/oomph-ac/waddle/oerror"

func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}

func NotNil(v any, what string) {
	if v == nil {
		panic(oerror.New("%s must not be nil", what))
	}
}
