package console

import (
	"context"
	"fmt"

	boardservice "github.com/thenoetrevino/board/internal/services/board"
)

func (c *Console) showMainMenu() {
	c.header("BOARD MANAGER - MAIN MENU")
	c.option(1, "List boards")
	c.option(2, "Create board")
	c.option(3, "Open board")
	c.option(4, "Delete board")
	c.option(0, "Exit")
}

func (c *Console) mainMenu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.showMainMenu()
		choice, err := c.readInt("Choose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = c.dispatch("list boards", func() error { return c.listBoards(ctx) })
		case 2:
			err = c.dispatch("create board", func() error { return c.createBoard(ctx) })
		case 3:
			err = c.dispatch("open board", func() error { return c.openBoard(ctx) })
		case 4:
			err = c.dispatch("delete board", func() error { return c.deleteBoard(ctx) })
		case 0:
			c.println("Goodbye!")
			return nil
		default:
			c.println("Invalid option! Try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) listBoards(ctx context.Context) error {
	boards, err := c.boards.ListBoards(ctx)
	if err != nil {
		return err
	}

	c.header("BOARDS")
	if len(boards) == 0 {
		c.println("No boards found.")
		return nil
	}
	for _, b := range boards {
		c.printf("%d - %s\n", b.ID, b.Name)
	}
	return nil
}

func (c *Console) createBoard(ctx context.Context) error {
	c.header("CREATE BOARD")
	name, err := c.readLine("Board name: ")
	if err != nil {
		return err
	}
	if name == "" {
		return boardservice.ErrEmptyName
	}

	c.println("Board layout:")
	c.option(1, "Default (To Do, In Progress, Done, Cancelled)")
	c.option(2, "Custom columns")
	layout, err := c.readInt("Layout: ")
	if err != nil {
		return err
	}

	switch layout {
	case 1:
		board, err := c.boards.CreateBoard(ctx, name)
		if err != nil {
			return err
		}
		c.success("Board '%s' created (ID: %d)", board.Name, board.ID)
	case 2:
		count, err := c.readInt("How many columns? ")
		if err != nil {
			return err
		}
		if count < 2 {
			return boardservice.ErrTooFewColumns
		}
		names := make([]string, 0, count)
		for i := 1; i <= count; i++ {
			col, err := c.readLine(fmt.Sprintf("Column %d name: ", i))
			if err != nil {
				return err
			}
			names = append(names, col)
		}
		board, err := c.boards.CreateBoardWithColumns(ctx, name, names)
		if err != nil {
			return err
		}
		c.success("Custom board '%s' created (ID: %d)", board.Name, board.ID)
	default:
		c.println("Invalid layout.")
	}
	return nil
}

func (c *Console) openBoard(ctx context.Context) error {
	id, err := c.readInt("Board ID: ")
	if err != nil {
		return err
	}
	board, err := c.boards.GetBoard(ctx, id)
	if err != nil {
		return err
	}
	c.printf("Opening board: %s\n", board.Name)
	return c.boardMenu(ctx, board.ID)
}

func (c *Console) deleteBoard(ctx context.Context) error {
	id, err := c.readInt("Board ID: ")
	if err != nil {
		return err
	}
	board, err := c.boards.GetBoard(ctx, id)
	if err != nil {
		return err
	}

	ok, err := c.confirm(fmt.Sprintf("Delete board '%s' with all its columns and cards?", board.Name))
	if err != nil {
		return err
	}
	if !ok {
		c.println("Cancelled.")
		return nil
	}
	if err := c.boards.DeleteBoard(ctx, id); err != nil {
		return err
	}
	c.success("Board '%s' deleted", board.Name)
	return nil
}
