// Package metadata is the operator registry the evaluation layer dispatches
// by name.
package metadata

import (
	"sync"

	"github.com/lomik/zapwriter"
	"go.uber.org/zap"

	"github.com/carbonlab/seriesops/expr/interfaces"
)

// Metadata stores the global name-to-operator table.
type Metadata struct {
	sync.RWMutex

	Functions map[string]interfaces.Function
}

// FunctionMD is the actual global table.
var FunctionMD = Metadata{
	Functions: make(map[string]interfaces.Function),
}

// RegisterFunction registers an operator under a public name. Duplicate
// registration is logged and the newer operator wins.
func RegisterFunction(name string, function interfaces.Function) {
	FunctionMD.Lock()
	defer FunctionMD.Unlock()
	if _, ok := FunctionMD.Functions[name]; ok {
		logger := zapwriter.Logger("registerFunction")
		logger.Error("function already registered, will register new anyway",
			zap.String("name", name),
			zap.Stack("stack"),
		)
	}
	FunctionMD.Functions[name] = function
}

// GetFunction looks up the operator registered under name. Unknown names are
// the evaluation layer's concern.
func GetFunction(name string) (interfaces.Function, bool) {
	FunctionMD.RLock()
	defer FunctionMD.RUnlock()
	f, ok := FunctionMD.Functions[name]
	return f, ok
}
