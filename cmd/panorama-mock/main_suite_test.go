package main

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPanoramaMock(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Panorama Mock CLI Suite")
}
