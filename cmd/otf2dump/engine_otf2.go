//go:build otf2

package main

import _ "github.com/getsentry/otf2/internal/native/otf2c"
