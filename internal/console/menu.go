// Package console runs the interactive menu sessions of the clinic billing
// desk and the sale tracker on top of their services.
package console

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"billdesk/internal/logger"
	"billdesk/internal/validation"
)

const closingMessage = "Thank you. Application closed normally."

type menu struct {
	title       string
	options     []string
	invalidText string

	// handle runs the chosen option. It returns false when the session should end.
	handle func(ctx context.Context, option int) (bool, error)
}

// run loops over the menu until the exit option is chosen or input fails.
func run(ctx context.Context, p *Prompter, component string, m menu) error {
	sessionID := uuid.NewString()
	log := logger.WithSession(component, sessionID)
	ctx = log.WithContext(ctx)

	log.Info().Str("title", m.title).Msg("Session started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		p.Printf("================== %s ==================\n", m.title)
		for i, option := range m.options {
			p.Printf("%d. %s\n", i+1, option)
		}

		answer, err := p.Ask("Enter your option: ")
		if err != nil {
			log.Error().Err(err).Msg("Session aborted while reading menu option")
			return err
		}

		option, convErr := strconv.Atoi(answer)
		if convErr != nil || option < 1 || option > len(m.options) {
			log.Debug().Str("answer", answer).Msg("Invalid menu option")
			p.Println(m.invalidText)
			continue
		}

		more, err := m.handle(ctx, option)
		if err != nil {
			log.Error().Err(err).Int("option", option).Msg("Session aborted")
			return err
		}
		if !more {
			p.Println(closingMessage)
			log.Info().Msg("Session ended")
			return nil
		}
	}
}

// reject shows the message of a validation error and swallows it. Any other
// error is returned so the session ends.
func reject(p *Prompter, log zerolog.Logger, err error) error {
	var vErr *validation.ValidationError
	if errors.As(err, &vErr) {
		log.Debug().Err(err).Str("field", vErr.Field).Msg("Input rejected")
		p.Println(vErr.Message)
		return nil
	}
	return err
}
