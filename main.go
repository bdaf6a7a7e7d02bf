/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/killallgit/lecture-api/cmd"

// @title           Lecture Relay API
// @version         1.0.0
// @description     Relays short audio chunks to a hosted speech-to-text translation provider and manages lecture session transcripts
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/lecture-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
