package controller

import (
	"bufio"
	"fmt"
	"io"

	"gofi/policy"
)

// A controller for interactive debugging of a target system.
//
// Before every trial it waits for the user to press enter. The experiment ends when the input is closed.
type DebugController struct {
	*InjectionController

	in     *bufio.Reader
	prompt io.Writer
}

// Create a new DebugController reading from in and printing prompts to prompt.
func NewDebugController(p policy.Policy, in io.Reader, prompt io.Writer) *DebugController {
	return &DebugController{
		InjectionController: NewInjectionController(p, 0),
		in:                  bufio.NewReader(in),
		prompt:              prompt,
	}
}

func (c *DebugController) HasNextTrial() bool {
	fmt.Fprintf(c.prompt, "Press enter to start trial %v\n", c.TrialId()+1)
	_, err := c.in.ReadString('\n')
	return err == nil
}
