//go:build windows

package stderr

import "github.com/charmbracelet/log"

// Start does nothing on Windows, where the audio backend leaves the
// console alone.
func Start(*log.Logger) error { return nil }

func Stop() {}
