package uicmd_test

import (
	"testing"

	"github.com/minelaunch/minelaunch/internal/mcversion"
	"github.com/minelaunch/minelaunch/internal/uicmd"
)

func TestClassify_VersionNotFound(t *testing.T) {
	err := &mcversion.VersionNotFoundError{ID: "99w99a"}
	cliErr := uicmd.Classify(err)

	if cliErr.Kind != "VersionNotFound" {
		t.Errorf("Kind = %q, want VersionNotFound", cliErr.Kind)
	}
	if cliErr.Artifact != "99w99a" {
		t.Errorf("Artifact = %q, want the version id", cliErr.Artifact)
	}
	if len(cliErr.Suggestions) == 0 {
		t.Error("expected at least one suggestion")
	}
}

func TestClassify_UnknownErrorFallsBackToGenericKind(t *testing.T) {
	cliErr := uicmd.Classify(errPlain("boom"))
	if cliErr.Kind != "Error" {
		t.Errorf("Kind = %q, want Error", cliErr.Kind)
	}
	if cliErr.Message != "boom" {
		t.Errorf("Message = %q, want boom", cliErr.Message)
	}
}

func TestClassify_Nil(t *testing.T) {
	if got := uicmd.Classify(nil); got != nil {
		t.Errorf("Classify(nil) = %v, want nil", got)
	}
}

type errPlain string

func (e errPlain) Error() string { return string(e) }
