package discord

import "github.com/bwmarrin/discordgo"

// Commands es la definición de los slash commands que registra
// cmd/register. Tiene que ir de la mano con las rutas de router.go.
func Commands() []*discordgo.ApplicationCommand {
	gameIDOpt := func() *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "juego",
			Description: "Id del juego",
			Required:    true,
		}
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "juego",
			Description: "Crear y administrar juegos de adivinanza",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "crear",
					Description: "Crea un juego nuevo",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "titulo",
							Description: "Título visible del juego",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Id a elegir (si falta, se genera uno)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "descripcion",
							Description: "Qué hay que adivinar",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "min",
							Description: "Valor mínimo aceptado",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "max",
							Description: "Valor máximo aceptado",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "listar",
					Description: "Lista los juegos del servidor",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "publicar",
					Description: "Publica el resumen de un juego en un canal",
					Options: []*discordgo.ApplicationCommandOption{
						gameIDOpt(),
						{
							Type:        discordgo.ApplicationCommandOptionChannel,
							Name:        "canal",
							Description: "Canal destino (default: este canal)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "cerrar",
					Description: "Cierra un juego (no acepta más guesses)",
					Options:     []*discordgo.ApplicationCommandOption{gameIDOpt()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reabrir",
					Description: "Reabre un juego cerrado",
					Options:     []*discordgo.ApplicationCommandOption{gameIDOpt()},
				},
			},
		},
		{
			Name:        "adivinar",
			Description: "Manda tu guess a un juego",
			Options: []*discordgo.ApplicationCommandOption{
				gameIDOpt(),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "valor",
					Description: "Tu guess",
					Required:    true,
				},
			},
		},
		{
			Name:        "gestionar",
			Description: "Editar o borrar guesses ajenas",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "editar-guess",
					Description: "Edita la guess de un usuario",
					Options:     []*discordgo.ApplicationCommandOption{gameIDOpt()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "borrar-guess",
					Description: "Borra la guess de un usuario",
					Options:     []*discordgo.ApplicationCommandOption{gameIDOpt()},
				},
			},
		},
		{
			Name:        "config",
			Description: "Configuración del bot en este servidor",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "canales",
					Description: "Agregar o quitar canales de gestión",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "roles",
					Description: "Agregar o quitar roles de gestión",
				},
			},
		},
	}
}
