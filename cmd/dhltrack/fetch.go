package main

import (
	"fmt"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	status, err := deps.Service.GetTrackingStatus(deps.Ctx, c.Code, c.Courier)
	if err != nil {
		return fmt.Errorf("tracking %s: %w", c.Code, err)
	}

	return printJSON(deps.Stdout, status)
}
