package main

import (
	"fmt"

	"github.com/tsunaou/polysi-go/loader"
	"github.com/tsunaou/polysi-go/loader/cobralog"
	"github.com/tsunaou/polysi-go/loader/dbcop"
	"github.com/tsunaou/polysi-go/loader/text"
)

// resolveLoader maps a --format flag value to its loader.Loader.
func resolveLoader(format string) (loader.Loader, error) {
	switch format {
	case "text", "":
		return text.New(), nil
	case "dbcop":
		return dbcop.New(), nil
	case "cobra":
		return cobralog.New(), nil
	default:
		return nil, fmt.Errorf("sicheck: unknown --format %q (want text, dbcop, or cobra)", format)
	}
}
