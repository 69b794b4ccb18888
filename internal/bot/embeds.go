package bot

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Embed accent colors, matching Discord's classic green/red/blue.
const (
	colorSuccess = 0x2ecc71
	colorError   = 0xe74c3c
	colorInfo    = 0x3498db
)

// embedFieldLimit is Discord's per-field character cap.
const embedFieldLimit = 1024

func baseEmbed(title, description string, color int, author *discordgo.User) *discordgo.MessageEmbed {
	e := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if author != nil {
		e.Author = &discordgo.MessageEmbedAuthor{
			Name:    author.Username,
			IconURL: author.AvatarURL(""),
		}
	}
	return e
}

func successEmbed(title, description string, author *discordgo.User) *discordgo.MessageEmbed {
	return baseEmbed("✅ "+title, description, colorSuccess, author)
}

func errorEmbed(title, description string, author *discordgo.User) *discordgo.MessageEmbed {
	return baseEmbed("❌ "+title, description, colorError, author)
}

func infoEmbed(title, description string, author *discordgo.User) *discordgo.MessageEmbed {
	return baseEmbed("ℹ️ "+title, description, colorInfo, author)
}
