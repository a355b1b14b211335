//go:build !pixdebug

package imop

const debug = false

func assertMask(*Options) {}
