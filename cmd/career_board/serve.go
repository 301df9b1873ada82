package main

import (
	"fmt"
	"strconv"

	"github.com/jonathan/career-board/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(c *cli) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  `Start an HTTP server that exposes the career board over REST. The server holds a single session, like one browser tab.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("port") {
				configured, err := strconv.Atoi(c.cfg.Port)
				if err != nil {
					return fmt.Errorf("invalid port %q: %w", c.cfg.Port, err)
				}
				port = configured
			}

			if _, err := c.services.SkillGap(); err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; /skill-gap will answer 503\n", err)
			}

			srv, err := server.New(server.Config{Port: port}, c.services)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}
			return srv.Start()
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on (overrides PORT)")
	return cmd
}
