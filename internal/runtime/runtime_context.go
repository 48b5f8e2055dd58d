package runtime

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Context carries the per-invocation dependencies every command receives:
// the logger, the flag-backed viper instance and the input stream prompts
// read from (replaceable in tests).
type Context struct {
	Logger *zerolog.Logger
	Viper  *viper.Viper
	Stdin  io.Reader
}

func NewContext(logger *zerolog.Logger, v *viper.Viper) *Context {
	return &Context{
		Logger: logger,
		Viper:  v,
		Stdin:  os.Stdin,
	}
}
