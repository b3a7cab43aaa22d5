//go:build !debug

package game

const strictInvariants = false
