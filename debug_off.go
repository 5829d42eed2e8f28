// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build !debug

package coredd

const debugEnabled = false

func debugf(format string, args ...any) {}
