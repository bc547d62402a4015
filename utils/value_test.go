package utils

import (
	"testing"

	"go.viam.com/test"
)

func TestAssertType(t *testing.T) {
	one := 1
	_, err := AssertType[string](one)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldEqual, "expected string but got int")

	section, err := AssertType[map[string]interface{}](map[string]interface{}{"name": "flir"})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, section["name"], test.ShouldEqual, "flir")
}
