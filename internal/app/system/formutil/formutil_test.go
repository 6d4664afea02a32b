package formutil

import (
	"net/http/httptest"
	"testing"
)

func TestSetBase(t *testing.T) {
	req := httptest.NewRequest("POST", "/dashboard/energy/calculator?return=/dashboard/energy", nil)

	var b Base
	SetBase(&b, req, "Energy Savings Calculator", "/")

	if b.Title != "Energy Savings Calculator" {
		t.Errorf("Title = %q", b.Title)
	}
	if b.CurrentPath == "" {
		t.Error("CurrentPath should be set")
	}
	if b.BackURL == "" {
		t.Error("BackURL should be set")
	}
}

func TestSetError_Escapes(t *testing.T) {
	var b Base
	b.SetError("<b>bad</b> tier")
	if string(b.Error) != "&lt;b&gt;bad&lt;/b&gt; tier" {
		t.Errorf("Error = %q", b.Error)
	}
	if !b.HasError() {
		t.Error("HasError() = false, want true")
	}
}

func TestAddError(t *testing.T) {
	var b Base
	b.AddError("")
	if b.HasError() {
		t.Fatal("blank message should not set an error")
	}
	b.AddError("first")
	b.AddError("second")
	if string(b.Error) != "first<br>second" {
		t.Errorf("Error = %q, want %q", b.Error, "first<br>second")
	}
}
