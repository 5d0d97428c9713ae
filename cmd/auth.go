package main

import (
	"context"
	"fmt"

	"github.com/elmi/cine/internal/models"
	"github.com/elmi/cine/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin signs in against the remote service and stores the session locally.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")

	if r.store == nil {
		return fmt.Errorf("%w: session store not initialized, run 'cine setup' first", shared.ErrServiceUnavailable)
	}

	r.logger.Infof("signing in as %v", email)

	sess, err := r.gateway.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	if err := r.store.Save(sess.UserID, sess.Role, sess.Email); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	r.logger.Info("authentication successful")
	return r.writePlain("✓ Connecté en tant que %s (%s)\n", sess.Email, sess.Role)
}

// AuthRegister creates an account, then stores the returned session.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	password := cmd.String("password")
	role := cmd.String("role")

	if role != models.RoleFilmOwner && role != models.RoleCinemaOwner {
		return fmt.Errorf("%w: role must be %s or %s", shared.ErrInvalidArgument, models.RoleFilmOwner, models.RoleCinemaOwner)
	}
	if r.store == nil {
		return fmt.Errorf("%w: session store not initialized, run 'cine setup' first", shared.ErrServiceUnavailable)
	}

	r.logger.Infof("registering %v with role %v", email, role)

	sess, err := r.gateway.Register(ctx, email, password, role)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	if err := r.store.Save(sess.UserID, sess.Role, sess.Email); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return r.writePlain("✓ Compte créé, connecté en tant que %s (%s)\n", sess.Email, sess.Role)
}

// AuthStatus prints the stored session, if any.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if r.store == nil {
		return fmt.Errorf("%w: session store not initialized", shared.ErrServiceUnavailable)
	}

	sess, err := r.store.Read()
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}

	if !sess.Authenticated() {
		return r.writePlain("✗ Not signed in\n")
	}

	r.writePlain("✓ Signed in\n")
	r.writePlain("Email: %s\n", sess.Email)
	r.writePlain("Role: %s\n", sess.Role)
	r.writePlain("User id: %d\n", sess.UserID)
	return nil
}

// AuthLogout clears the stored session.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if r.store == nil {
		return fmt.Errorf("%w: session store not initialized", shared.ErrServiceUnavailable)
	}

	if err := r.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	r.logger.Info("session cleared")
	return r.writePlain("✓ Déconnecté\n")
}
