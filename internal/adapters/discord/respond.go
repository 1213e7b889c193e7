package discord

import (
	"encoding/json"

	"github.com/bwmarrin/discordgo"
)

type ResponseKind int

const (
	RespondPong ResponseKind = iota
	RespondMessage
	RespondModal
)

// Response es lo que el webhook devuelve inline. Se arma acá y recién
// en MarshalResponse se traduce al JSON que espera la plataforma.
type Response struct {
	Kind      ResponseKind
	Content   string
	Ephemeral bool

	Embed      *discordgo.MessageEmbed
	Components []discordgo.MessageComponent

	Modal *ModalSpec // solo RespondModal
}

type ModalSpec struct {
	CustomID string
	Title    string
	Inputs   []ModalInput
}

type ModalInput struct {
	CustomID    string
	Label       string
	Placeholder string
	Value       string
	Required    bool
}

func Pong() *Response { return &Response{Kind: RespondPong} }

// Ephemeral: mensaje que solo ve quien disparó la interacción. Es
// nuestro default para todo lo que sea feedback de comando.
func Ephemeral(content string) *Response {
	return &Response{Kind: RespondMessage, Content: content, Ephemeral: true}
}

func Modal(spec *ModalSpec) *Response {
	return &Response{Kind: RespondModal, Modal: spec}
}

func buildInteractionResponse(r *Response) *discordgo.InteractionResponse {
	switch r.Kind {
	case RespondPong:
		return &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong}

	case RespondModal:
		comps := make([]discordgo.MessageComponent, 0, len(r.Modal.Inputs))
		for _, in := range r.Modal.Inputs {
			comps = append(comps, discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    in.CustomID,
						Label:       in.Label,
						Style:       discordgo.TextInputShort,
						Placeholder: in.Placeholder,
						Value:       in.Value,
						Required:    in.Required,
					},
				},
			})
		}
		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseModal,
			Data: &discordgo.InteractionResponseData{
				CustomID:   r.Modal.CustomID,
				Title:      r.Modal.Title,
				Components: comps,
			},
		}

	default:
		data := &discordgo.InteractionResponseData{
			Content:    r.Content,
			Components: r.Components,
		}
		if r.Embed != nil {
			data.Embeds = []*discordgo.MessageEmbed{r.Embed}
		}
		if r.Ephemeral {
			data.Flags = discordgo.MessageFlagsEphemeral
		}
		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: data,
		}
	}
}

// MarshalResponse serializa la respuesta al envelope JSON del webhook.
func MarshalResponse(r *Response) ([]byte, error) {
	return json.Marshal(buildInteractionResponse(r))
}
