// Package uicmd wraps cobra commands so that typed errors surfaced
// anywhere in the launch pipeline are classified by kind and rendered
// consistently, instead of each command printing its own ad hoc message.
package uicmd

import (
	"errors"
	"fmt"

	"github.com/minelaunch/minelaunch/internal/fetch"
	"github.com/minelaunch/minelaunch/internal/javart"
	"github.com/minelaunch/minelaunch/internal/launch"
	"github.com/minelaunch/minelaunch/internal/mcversion"
	"github.com/minelaunch/minelaunch/internal/natives"
	"github.com/minelaunch/minelaunch/internal/resolver"
)

// CliError is the user-facing shape every classified error is
// rendered through: a short kind, the underlying message, the
// offending artifact (a path/url/id, if any), and optional follow-up
// suggestions.
type CliError struct {
	Kind        string
	Message     string
	Artifact    string
	Suggestions []string
	cause       error
}

func (e *CliError) Error() string {
	if e.Artifact != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Artifact)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CliError) Unwrap() error { return e.cause }

// Classify maps any error surfaced by the launch pipeline into a
// CliError, recognizing the typed errors each component defines and
// falling back to a generic "Error" kind for anything else.
func Classify(err error) *CliError {
	if err == nil {
		return nil
	}

	var cliErr *CliError
	if errors.As(err, &cliErr) {
		return cliErr
	}

	var configErr *launch.ConfigError
	if errors.As(err, &configErr) {
		return &CliError{Kind: "ConfigError", Message: configErr.Reason, cause: err}
	}

	var notFound *mcversion.VersionNotFoundError
	if errors.As(err, &notFound) {
		return &CliError{
			Kind:        "VersionNotFound",
			Message:     "no such version",
			Artifact:    notFound.ID,
			Suggestions: []string{"run `mclaunch list` to see what's available"},
			cause:       err,
		}
	}

	var cyclic *mcversion.CyclicInheritanceError
	if errors.As(err, &cyclic) {
		return &CliError{Kind: "CyclicInheritance", Message: cyclic.Error(), cause: err}
	}

	var malformed *mcversion.MalformedDescriptorError
	if errors.As(err, &malformed) {
		return &CliError{Kind: "MalformedDescriptor", Message: malformed.Error(), Artifact: malformed.ID, cause: err}
	}

	var netErr *fetch.NetworkError
	if errors.As(err, &netErr) {
		return &CliError{Kind: "NetworkError", Message: netErr.Cause.Error(), Artifact: netErr.URL, cause: err}
	}

	var hashErr *fetch.HashMismatchError
	if errors.As(err, &hashErr) {
		return &CliError{
			Kind:     "HashMismatch",
			Message:  fmt.Sprintf("expected %s, got %s", hashErr.Expected, hashErr.Actual),
			Artifact: hashErr.Path,
			cause:    err,
		}
	}

	var javaErr *javart.JavaUnavailableError
	if errors.As(err, &javaErr) {
		return &CliError{
			Kind:        "JavaUnavailable",
			Message:     javaErr.Error(),
			Suggestions: []string{"pass --java-path to point at an already-installed runtime"},
			cause:       err,
		}
	}

	var nativesErr *natives.ExtractionError
	if errors.As(err, &nativesErr) {
		return &CliError{Kind: "NativesExtractionError", Message: nativesErr.Cause.Error(), Artifact: nativesErr.JarPath, cause: err}
	}

	var spawnErr *launch.LaunchSpawnError
	if errors.As(err, &spawnErr) {
		return &CliError{Kind: "LaunchSpawnError", Message: spawnErr.Cause.Error(), cause: err}
	}

	var exitErr *launch.ChildExitError
	if errors.As(err, &exitErr) {
		return &CliError{Kind: "ChildExit", Message: exitErr.Error(), cause: err}
	}

	var aggErr *resolver.AggregateError
	if errors.As(err, &aggErr) {
		return &CliError{Kind: "NetworkError", Message: aggErr.Error(), cause: err}
	}

	return &CliError{Kind: "Error", Message: err.Error(), cause: err}
}
