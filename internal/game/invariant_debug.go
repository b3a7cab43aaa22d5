//go:build debug

package game

const strictInvariants = true
