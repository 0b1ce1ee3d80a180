package slack

import (
	"testing"
	"time"

	"github.com/mensabot/mensa-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuBlocks(t *testing.T) {
	menu := entity.NewMenu(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), time.Now(), []entity.Meal{
		{Name: "Gemüsecurry (vegan)", Price: "ST: 1,80€ / MA: 3,10€ / EX: 4,20€"},
		{Name: "Beilagen: Reis, Salat", Price: "-"},
	})

	blocks := MenuBlocks(menu)
	require.Len(t, blocks, 4)

	header, ok := blocks[0].(*slack.HeaderBlock)
	require.True(t, ok)
	assert.Contains(t, header.Text.Text, "Menu for Monday, 08.01.2024")

	assert.Equal(t, slack.MBTDivider, blocks[2].BlockType())

	first, ok := blocks[1].(*slack.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "*Gemüsecurry (vegan)*\nST: 1,80€ / MA: 3,10€ / EX: 4,20€", first.Text.Text)

	last, ok := blocks[3].(*slack.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "*Beilagen: Reis, Salat*\n-", last.Text.Text)
}

func TestMenuMessage_Empty(t *testing.T) {
	menu := entity.NewMenu(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), time.Now(), nil)

	text, blocks := MenuMessage(menu)
	assert.Equal(t, "Menu for Monday, 08.01.2024:\nNo meals listed.", text)
	require.Len(t, blocks, 2)

	section, ok := blocks[1].(*slack.SectionBlock)
	require.True(t, ok)
	assert.Equal(t, "_No meals listed._", section.Text.Text)
}
