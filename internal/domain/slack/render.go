package slack

import (
	"fmt"

	"github.com/mensabot/mensa-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

// MenuBlocks renders menu as Block Kit: a header, then one section per meal
// separated by dividers.
func MenuBlocks(menu entity.Menu) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, "🍽️ "+menu.Title(), true, false)),
	}

	if len(menu.Meals) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, "_No meals listed._", false, false), nil, nil))
		return blocks
	}

	for i, meal := range menu.Meals {
		if i > 0 {
			blocks = append(blocks, slack.NewDividerBlock())
		}
		text := fmt.Sprintf("*%s*\n%s", meal.Name, meal.Price)
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil))
	}

	return blocks
}

// MenuMessage returns the plain text fallback and the blocks of menu.
func MenuMessage(menu entity.Menu) (string, []slack.Block) {
	return menu.Text(), MenuBlocks(menu)
}
