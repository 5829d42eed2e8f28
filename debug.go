// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build debug

package coredd

import "log"

const debugEnabled = true

// debugf logs a debug message when the module is compiled with the
// `debug` build tag, the same convention rudd/debug.go uses to gate
// _DEBUG/_LOGLEVEL output through the standard log package.
func debugf(format string, args ...any) {
	log.Printf("[coredd] "+format, args...)
}
