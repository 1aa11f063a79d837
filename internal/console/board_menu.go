package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/thenoetrevino/board/internal/cli/styles"
	"github.com/thenoetrevino/board/internal/models"
	boardservice "github.com/thenoetrevino/board/internal/services/board"
)

func (c *Console) showBoardMenu(board *models.Board) {
	c.header("BOARD: " + strings.ToUpper(board.Name))
	c.option(1, "Board details")
	c.option(2, "Create card")
	c.option(3, "List cards")
	c.option(4, "Move card")
	c.option(5, "Move card to next column")
	c.option(6, "Block card")
	c.option(7, "Unblock card")
	c.option(8, "Cancel card")
	c.option(9, "Card details")
	c.option(10, "Edit card")
	c.option(11, "Delete card")
	c.option(12, "Add column")
	c.option(0, "Back to main menu")
}

func (c *Console) boardMenu(ctx context.Context, boardID int) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		board, err := c.boards.GetBoard(ctx, boardID)
		if err != nil {
			if errors.Is(err, boardservice.ErrBoardNotFound) {
				return nil
			}
			return err
		}

		c.showBoardMenu(board)
		choice, err := c.readInt("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = c.dispatch("board details", func() error { return c.showBoardDetails(ctx, boardID) })
		case 2:
			err = c.dispatch("create card", func() error { return c.createCard(ctx, boardID) })
		case 3:
			err = c.dispatch("list cards", func() error { return c.listCards(ctx, boardID) })
		case 4:
			err = c.dispatch("move card", func() error { return c.moveCard(ctx, boardID) })
		case 5:
			err = c.dispatch("move card to next", func() error { return c.moveCardToNext(ctx) })
		case 6:
			err = c.dispatch("block card", func() error { return c.blockCard(ctx) })
		case 7:
			err = c.dispatch("unblock card", func() error { return c.unblockCard(ctx) })
		case 8:
			err = c.dispatch("cancel card", func() error { return c.cancelCard(ctx) })
		case 9:
			err = c.dispatch("card details", func() error { return c.showCardDetails(ctx) })
		case 10:
			err = c.dispatch("edit card", func() error { return c.editCard(ctx) })
		case 11:
			err = c.dispatch("delete card", func() error { return c.deleteCard(ctx) })
		case 12:
			err = c.dispatch("add column", func() error { return c.addColumn(ctx, boardID) })
		case 0:
			return nil
		default:
			c.println("Invalid option! Try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) showBoardDetails(ctx context.Context, boardID int) error {
	details, err := c.boards.GetBoardDetails(ctx, boardID)
	if err != nil {
		return err
	}

	c.header("BOARD DETAILS")
	c.printf("Board: %s (ID: %d)\n", details.Name, details.ID)
	c.println("Columns:")
	for _, col := range details.Columns {
		c.printf("  %d. %s %s: %d cards (ID: %d)\n",
			col.Position, col.Name, styles.RenderKind(col.Kind), col.CardCount, col.ID)
	}
	c.printf("Total cards: %d\n", details.TotalCards())
	return nil
}

func (c *Console) createCard(ctx context.Context, boardID int) error {
	c.header("CREATE CARD")
	title, err := c.readLine("Card title: ")
	if err != nil {
		return err
	}
	description, err := c.readLine("Card description: ")
	if err != nil {
		return err
	}

	card, err := c.cards.CreateCard(ctx, boardID, title, description)
	if err != nil {
		return err
	}
	c.success("Card '%s' created (ID: %d)", card.Title, card.ID)
	return nil
}

func (c *Console) listCards(ctx context.Context, boardID int) error {
	cards, err := c.cards.ListCardsByBoard(ctx, boardID)
	if err != nil {
		return err
	}

	c.header("CARDS")
	if len(cards) == 0 {
		c.println("No cards on this board.")
		return nil
	}
	for _, card := range cards {
		line := fmt.Sprintf("%d - %s [%s]", card.ID, card.Title, card.ColumnName)
		if card.Blocked {
			line += " " + styles.RenderBlocked()
		}
		c.println(line)
	}
	return nil
}

func (c *Console) moveCard(ctx context.Context, boardID int) error {
	cardID, err := c.readInt("Card ID: ")
	if err != nil {
		return err
	}

	columns, err := c.columns.ListColumns(ctx, boardID)
	if err != nil {
		return err
	}
	c.println("Available columns:")
	for _, col := range columns {
		c.printf("  %d - %s %s\n", col.ID, col.Name, styles.RenderKind(col.Kind))
	}

	columnID, err := c.readInt("Target column ID: ")
	if err != nil {
		return err
	}
	moved, err := c.cards.MoveCard(ctx, cardID, columnID)
	if err != nil {
		return err
	}
	c.success("Card '%s' moved to '%s'", moved.Title, moved.ColumnName)
	return nil
}

func (c *Console) moveCardToNext(ctx context.Context) error {
	cardID, err := c.readInt("Card ID: ")
	if err != nil {
		return err
	}
	moved, err := c.cards.MoveCardToNext(ctx, cardID)
	if err != nil {
		return err
	}
	c.success("Card '%s' moved to '%s'", moved.Title, moved.ColumnName)
	return nil
}

func (c *Console) blockCard(ctx context.Context) error {
	cardID, err := c.readInt("Card ID: ")
	if err != nil {
		return err
	}
	reason, err := c.readLine("Block reason: ")
	if err != nil {
		return err
	}
	if _, err := c.cards.BlockCard(ctx, cardID, reason); err != nil {
		return err
	}
	c.success("Card %d blocked", cardID)
	return nil
}

func (c *Console) unblockCard(ctx context.Context) error {
	cardID, err := c.readInt("Card ID: ")
	if err != nil {
		return err
	}
	reason, err := c.readLine("Unblock reason: ")
	if err != nil {
		return err
	}
	if _, err := c.cards.UnblockCard(ctx, cardID, reason); err != nil {
		return err
	}
	c.success("Card %d unblocked", cardID)
	return nil
}

func (c *Console) cancelCard(ctx context.Context) error {
	cardID, err := c.readInt("Card ID: ")
	if err != nil {
		return err
	}
	moved, err := c.cards.CancelCard(ctx, cardID)
	if err != nil {
		return err
	}
	c.success("Card '%s' cancelled", moved.Title)
	return nil
}

func (c *Console) showCardDetails(ctx context.Context) error {
	cardID, err := c.readInt("Card ID: ")
	if err != nil {
		return err
	}
	d, err := c.cards.GetCardDetails(ctx, cardID)
	if err != nil {
		return err
	}

	c.header("CARD DETAILS")
	c.printf("ID: %d\n", d.ID)
	c.printf("Title: %s\n", d.Title)
	c.printf("Description:\n%s\n", styles.Wrap(d.Description, c.width))
	c.printf("Column: %s %s\n", d.ColumnName, styles.RenderKind(d.ColumnKind))
	c.printf("Created: %s\n", d.CreatedAt.Local().Format("2006-01-02 15:04"))
	if d.Blocked {
		c.printf("Blocked: yes %s\n", styles.RenderBlocked())
		if d.BlockedAt != nil {
			c.printf("Blocked at: %s\n", d.BlockedAt.Local().Format("2006-01-02 15:04"))
		}
		c.printf("Reason: %s\n", d.BlockReason)
		c.printf("Blocked by: %s\n", d.BlockedBy)
	} else {
		c.println("Blocked: no")
	}
	c.printf("Times blocked: %d\n", d.BlockCount)
	return nil
}

func (c *Console) editCard(ctx context.Context) error {
	cardID, err := c.readInt("Card ID: ")
	if err != nil {
		return err
	}
	title, err := c.readLine("New title: ")
	if err != nil {
		return err
	}
	description, err := c.readLine("New description: ")
	if err != nil {
		return err
	}
	card, err := c.cards.UpdateCard(ctx, cardID, title, description)
	if err != nil {
		return err
	}
	c.success("Card '%s' updated", card.Title)
	return nil
}

func (c *Console) deleteCard(ctx context.Context) error {
	cardID, err := c.readInt("Card ID: ")
	if err != nil {
		return err
	}
	ok, err := c.confirm(fmt.Sprintf("Delete card %d?", cardID))
	if err != nil {
		return err
	}
	if !ok {
		c.println("Cancelled.")
		return nil
	}
	if err := c.cards.DeleteCard(ctx, cardID); err != nil {
		return err
	}
	c.success("Card %d deleted", cardID)
	return nil
}

func (c *Console) addColumn(ctx context.Context, boardID int) error {
	name, err := c.readLine("Column name: ")
	if err != nil {
		return err
	}
	col, err := c.columns.AddColumn(ctx, boardID, name)
	if err != nil {
		return err
	}
	c.success("Column '%s' added at position %d (ID: %d)", col.Name, col.Position, col.ID)
	return nil
}
