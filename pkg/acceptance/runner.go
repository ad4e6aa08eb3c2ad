package acceptance

import "github.com/onsi/ginkgo/v2"

// Runner is the test runner a Suite registers its groups with.
type Runner interface {
	// Container registers a nested group. body declares the group's contents and
	// is called during registration.
	Container(text string, body func(), decorators ...interface{})
	// BeforeEach registers a setup hook for every example in the current group.
	BeforeEach(body func())
	// It registers an example in the current group.
	It(text string, body func())
	// Fail fails the running example. Implementations are expected to abort the
	// example, e.g. by panicking.
	Fail(message string, callerSkip ...int)
}

// GinkgoRunner registers groups as ginkgo containers.
type GinkgoRunner struct{}

var _ Runner = GinkgoRunner{}

// Container implements Runner.
func (GinkgoRunner) Container(text string, body func(), decorators ...interface{}) {
	ginkgo.Describe(text, append(decorators, body)...)
}

// BeforeEach implements Runner.
func (GinkgoRunner) BeforeEach(body func()) { ginkgo.BeforeEach(body) }

// It implements Runner.
func (GinkgoRunner) It(text string, body func()) { ginkgo.It(text, body) }

// Fail implements Runner.
func (GinkgoRunner) Fail(message string, callerSkip ...int) {
	skip := 1
	if len(callerSkip) > 0 {
		skip += callerSkip[0]
	}
	ginkgo.Fail(message, skip)
}
