// Package bridge is the host-facing entry of the date formatter. It turns
// library failures into host exceptions.
package bridge

import (
	zlog "github.com/rs/zerolog/log"
)

// RuntimeException is the class raised for every library failure.
const RuntimeException = "java/lang/RuntimeException"

// Exception is a host exception.
type Exception struct {
	Class   string
	Message string
}

// Summary returns the binary class name followed by the message, if any.
func (e *Exception) Summary() string {
	if e.Message == "" {
		return e.Class
	}
	return e.Class + ": " + e.Message
}

// Env is a host environment holding at most one pending exception.
// It is not safe for concurrent use; each caller owns its Env.
type Env struct {
	pending *Exception
}

// NewEnv returns an environment with no pending exception.
func NewEnv() *Env {
	return &Env{}
}

// Throw makes ex the pending exception. A previously pending exception is
// discarded and logged.
func (e *Env) Throw(ex *Exception) {
	if e.pending != nil {
		zlog.Warn().Msgf("Discarding pending exception (%s) to throw %s", e.pending.Summary(), ex.Class)
	}
	e.pending = ex
}

// ThrowNew raises a new exception of the given class.
func (e *Env) ThrowNew(class, msg string) {
	e.Throw(&Exception{Class: class, Message: msg})
}

// ExceptionCheck reports whether an exception is pending.
func (e *Env) ExceptionCheck() bool {
	return e.pending != nil
}

// ExceptionOccurred returns the pending exception or nil.
func (e *Env) ExceptionOccurred() *Exception {
	return e.pending
}

// ExceptionClear drops the pending exception.
func (e *Env) ExceptionClear() {
	e.pending = nil
}

// Describe logs the pending exception and clears it.
func (e *Env) Describe() {
	if e.pending == nil {
		return
	}
	zlog.Error().Msgf("Pending exception: %s", e.pending.Summary())
	e.pending = nil
}
