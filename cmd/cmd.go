// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and the local session database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// authCommand handles account operations against the remote service
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Sign in, register, and inspect the stored session",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in with email and password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "register",
				Usage: "Create an account and sign in",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "role",
						Aliases:  []string{"r"},
						Usage:    "Account role (proprio_film or proprio_cinema)",
						Required: true,
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:   "status",
				Usage:  "Show the stored session",
				Action: r.AuthStatus,
			},
			{
				Name:   "logout",
				Usage:  "Clear the stored session",
				Action: r.AuthLogout,
			},
		},
	}
}

// filmsCommand handles catalogue reads for films
func filmsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "films",
		Aliases: []string{"f"},
		Usage:   "Browse the film catalogue",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List films, optionally filtered by city",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "ville",
						Aliases: []string{"v"},
						Usage:   "Only films programmed in this city",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.FilmsList,
			},
			{
				Name:  "show",
				Usage: "Show one film with its programmations",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.FilmsShow,
			},
		},
	}
}

// cinemasCommand handles catalogue reads for cinemas
func cinemasCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "cinemas",
		Aliases: []string{"cin"},
		Usage:   "Browse cinemas",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all cinemas",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "mine",
						Usage: "Only cinemas owned by the signed-in user",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.CinemasList,
			},
			{
				Name:  "show",
				Usage: "Show one cinema with its programmations and the film catalogue",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.CinemasShow,
			},
		},
	}
}

// publishCommand handles authenticated writes
func publishCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "publish",
		Aliases: []string{"pub"},
		Usage:   "Publish films, cinemas and programmations",
		Commands: []*cli.Command{
			{
				Name:  "film",
				Usage: "Publish a new film (requires the proprio_film role)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "titre",
						Usage:    "Film title",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "duree",
						Usage:    "Duration in minutes",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "langue",
						Usage:    "Original language",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "realisateur",
						Usage: "Director",
					},
					&cli.IntFlag{
						Name:  "age-min",
						Usage: "Minimum age",
					},
					&cli.StringFlag{
						Name:  "sous-titre",
						Usage: "Subtitle language",
					},
				},
				Action: r.PublishFilm,
			},
			{
				Name:  "cinema",
				Usage: "Publish a new cinema (requires the proprio_cinema role)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "nom",
						Usage:    "Cinema name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "adresse",
						Usage:    "Street address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "ville",
						Usage:    "City",
						Required: true,
					},
				},
				Action: r.PublishCinema,
			},
			{
				Name:  "programmation",
				Usage: "Schedule a film in a cinema you own",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "film",
						Usage:    "Film id",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "cinema",
						Usage:    "Cinema id",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "from",
						Usage:    "Start date (YYYY-MM-DD)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "End date (YYYY-MM-DD)",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:    "slot",
						Aliases: []string{"s"},
						Usage:   "Screening slot as JOUR@HH:MM (exactly three)",
					},
				},
				Action: r.PublishProgrammation,
			},
		},
	}
}

// exportCommand writes catalogue data to local files
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export catalogue data to a local file",
		Commands: []*cli.Command{
			{
				Name:  "films",
				Usage: "Export the film list",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "ville",
						Aliases: []string{"v"},
						Usage:   "Only films programmed in this city",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: csv, md or txt",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
						Value:   "films.csv",
					},
				},
				Action: r.ExportFilms,
			},
			{
				Name:  "cinemas",
				Usage: "Export the cinema list",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: csv or txt",
						Value:   "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
						Value:   "cinemas.csv",
					},
				},
				Action: r.ExportCinemas,
			},
		},
	}
}

func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Launch the interactive terminal UI",
		Action: r.TUI,
	}
}
