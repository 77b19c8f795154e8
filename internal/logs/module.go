// Package logs builds the structured logger used by command line tools.
package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}
