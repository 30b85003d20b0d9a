package discord

import (
	"fmt"
	"log"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
)

// Responder is the part of *discordgo.Session used to answer interactions
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// RecoverMiddleware wraps handler functions to recover from panics
func RecoverMiddleware(handlerName string, handler func(*discordgo.Session, *discordgo.InteractionCreate)) func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		defer recoverAndReport(handlerName, s, i)
		handler(s, i)
	}
}

func recoverAndReport(handlerName string, r Responder, i *discordgo.InteractionCreate) {
	if p := recover(); p != nil {
		log.Printf("PANIC in %s handler: %v\nStack trace:\n%s", handlerName, p, debug.Stack())
		respondWithError(r, i, fmt.Sprintf("An unexpected error occurred: %v", p))
	}
}

// respondWithError attempts to send an error message to the user
func respondWithError(r Responder, i *discordgo.InteractionCreate, message string) {
	responses := []func() error{
		// Try responding if not yet responded
		func() error {
			return r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Content: fmt.Sprintf("❌ %s", message),
					Flags:   discordgo.MessageFlagsEphemeral,
				},
			})
		},
		// Try followup if already responded
		func() error {
			_, err := r.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
				Content: fmt.Sprintf("❌ %s", message),
				Flags:   discordgo.MessageFlagsEphemeral,
			})
			return err
		},
	}

	for _, respond := range responses {
		if err := respond(); err == nil {
			return
		}
	}

	log.Printf("Failed to send error response to user: %s", message)
}
