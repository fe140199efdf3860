// @title        Academic Events API
// @version      1.0
// @description  Events, facilities, organizations, faculties, users and evaluations of the academic event platform.
// @BasePath     /api/v1

package main

import "academic-events/cmd/server/cmd"

func main() {
	cmd.Execute()
}
