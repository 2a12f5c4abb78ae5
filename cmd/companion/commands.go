package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/leohylee/tes-companion/internal/clients/companion"
	"github.com/leohylee/tes-companion/internal/drag"
	"github.com/leohylee/tes-companion/internal/entities"
	dnderr "github.com/leohylee/tes-companion/internal/errors"
	"github.com/leohylee/tes-companion/internal/events"
	"github.com/leohylee/tes-companion/internal/geometry"
	"github.com/leohylee/tes-companion/internal/store"
)

// Virtual map surface the CLI drags on, in pixels
const (
	surfaceWidth  = 1000
	surfaceHeight = 1000
)

type app struct {
	client companion.Client
	bus    *events.Bus
	out    io.Writer
}

func (a *app) run(ctx context.Context, args []string) error {
	switch args[0] {
	case "maps":
		return a.maps(ctx)
	case "characters":
		return a.characters(ctx, args[1:])
	case "campaigns":
		return a.campaigns(ctx, args[1:])
	case "overland":
		return a.overland(ctx, args[1:])
	default:
		return dnderr.InvalidArgumentf("unknown command %q", args[0])
	}
}

func need(args []string, n int, form string) error {
	if len(args) < n {
		return dnderr.InvalidArgumentf("usage: %s", form)
	}
	return nil
}

// parseDelta accepts +n, -n or n
func parseDelta(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(s, "+"))
	if err != nil {
		return 0, dnderr.InvalidArgumentf("invalid number %q", s)
	}
	return n, nil
}

func (a *app) maps(ctx context.Context) error {
	maps, err := a.client.ListMaps(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tIMAGE")
	for _, m := range maps.Maps {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", m.ID, m.Name, m.ImagePath)
	}
	return tw.Flush()
}

func (a *app) characters(ctx context.Context, args []string) error {
	if err := need(args, 1, "characters <list|create|skill-add|skill-remove|master|delete>"); err != nil {
		return err
	}

	chars := store.NewCharacterStore(&store.CharacterStoreConfig{Remote: a.client, Bus: a.bus})
	if err := chars.Fetch(ctx); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		return a.printCharacters(chars.List())
	case "create":
		if err := need(args, 4, "characters create <name> <race> <class> [skill...]"); err != nil {
			return err
		}
		input := &entities.CharacterInput{
			Name:    args[1],
			Race:    entities.RaceID(args[2]),
			ClassID: entities.ClassID(args[3]),
		}
		for _, skill := range args[4:] {
			input.Skills = append(input.Skills, entities.NewSkill(entities.SkillID(skill)))
		}
		c, err := chars.Add(ctx, input)
		if err != nil {
			return err
		}
		return a.printCharacters([]*entities.Character{c})
	case "skill-add", "skill-remove":
		if err := need(args, 3, "characters "+args[0]+" <id> <skill>"); err != nil {
			return err
		}
		var c *entities.Character
		var err error
		if args[0] == "skill-add" {
			c, err = chars.AddSkill(ctx, args[1], entities.SkillID(args[2]))
		} else {
			c, err = chars.RemoveSkill(ctx, args[1], args[2])
		}
		if err != nil {
			return err
		}
		return a.printCharacters([]*entities.Character{c})
	case "master":
		if err := need(args, 2, "characters master <id>"); err != nil {
			return err
		}
		c, err := chars.ToggleMaster(ctx, args[1])
		if err != nil {
			return err
		}
		return a.printCharacters([]*entities.Character{c})
	case "delete":
		if err := need(args, 2, "characters delete <id>"); err != nil {
			return err
		}
		return chars.Remove(ctx, args[1])
	default:
		return dnderr.InvalidArgumentf("unknown characters command %q", args[0])
	}
}

func (a *app) printCharacters(list []*entities.Character) error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tRACE\tCLASS\tRANK\tSKILLS")
	for _, c := range list {
		rank := "novice"
		if c.IsMaster {
			rank = "master"
		}
		skills := make([]string, 0, len(c.Skills))
		for _, s := range c.Skills {
			skills = append(skills, s.SkillID.Name())
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.Name, c.Race.Name(), c.ClassID.Name(), rank, strings.Join(skills, ", "))
	}
	return tw.Flush()
}

func (a *app) campaigns(ctx context.Context, args []string) error {
	if err := need(args, 1, "campaigns <list|create|show|day|xp|hp|map|token|drag|marker|unmark|delete>"); err != nil {
		return err
	}

	if args[0] == "show" {
		if err := need(args, 2, "campaigns show <id>"); err != nil {
			return err
		}
		c, err := a.client.GetCampaign(ctx, args[1])
		if err != nil {
			return err
		}
		return a.printCampaign(c)
	}

	camps := store.NewCampaignStore(&store.CampaignStoreConfig{Remote: a.client, Bus: a.bus})
	if err := camps.Fetch(ctx); err != nil {
		return err
	}

	var (
		c   *entities.Campaign
		err error
	)
	switch args[0] {
	case "list":
		tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tDAY\tPARTY XP\tPARTY")
		for _, c := range camps.List() {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\n", c.ID, c.Name, c.Day, c.PartyXP, len(c.CharacterIDs))
		}
		return tw.Flush()
	case "create":
		c, err = camps.Add(ctx, args[1:])
	case "day", "xp":
		if err := need(args, 3, "campaigns "+args[0]+" <id> <+n|-n>"); err != nil {
			return err
		}
		delta, perr := parseDelta(args[2])
		if perr != nil {
			return perr
		}
		if args[0] == "day" {
			c, err = camps.AdjustDay(ctx, args[1], delta)
		} else {
			c, err = camps.AdjustPartyXP(ctx, args[1], delta)
		}
	case "hp":
		if err := need(args, 4, "campaigns hp <id> <characterId> <+n|-n>"); err != nil {
			return err
		}
		delta, perr := parseDelta(args[3])
		if perr != nil {
			return perr
		}
		c, err = camps.AdjustCharacterHP(ctx, args[1], args[2], delta)
	case "map":
		if err := need(args, 3, "campaigns map <id> <mapId|none>"); err != nil {
			return err
		}
		var mapID *entities.MapID
		if args[2] != "none" {
			id := entities.MapID(args[2])
			mapID = &id
		}
		c, err = camps.SetOverland(ctx, args[1], mapID)
	case "delete":
		if err := need(args, 2, "campaigns delete <id>"); err != nil {
			return err
		}
		return camps.Remove(ctx, args[1])
	case "token", "drag", "marker", "unmark":
		c, err = a.editBoard(ctx, camps, args)
	default:
		return dnderr.InvalidArgumentf("unknown campaigns command %q", args[0])
	}
	if err != nil {
		return err
	}
	return a.printCampaign(c)
}

// editBoard applies one edit to a campaign's map and saves it
func (a *app) editBoard(ctx context.Context, camps *store.CampaignStore, args []string) (*entities.Campaign, error) {
	if err := need(args, 3, "campaigns "+args[0]+" <id> ..."); err != nil {
		return nil, err
	}
	board, err := store.NewCampaignBoard(&store.CampaignBoardConfig{
		Campaigns:  camps,
		CampaignID: args[1],
		Bus:        a.bus,
	})
	if err != nil {
		return nil, err
	}

	switch args[0] {
	case "token":
		label := ""
		if len(args) > 3 {
			label = args[3]
		}
		_, err = board.AddToken(args[2], label)
	case "drag":
		if err := need(args, 5, "campaigns drag <id> <tokenId> <dx> <dy>"); err != nil {
			return nil, err
		}
		err = dragToken(ctx, board, args[2], args[3], args[4])
	case "marker":
		if err := need(args, 5, "campaigns marker <id> <type> <x> <y> [label]"); err != nil {
			return nil, err
		}
		err = placeMarker(ctx, board, args[2:])
	case "unmark":
		err = drag.ClickMarker(ctx, board, args[2])
	}
	if err != nil {
		return nil, err
	}
	return board.Save(ctx)
}

func (a *app) printCampaign(c *entities.Campaign) error {
	fmt.Fprintf(a.out, "%s (%s)\n  day %d, party xp %d\n", c.Name, c.ID, c.Day, c.PartyXP)
	if c.Overland != nil {
		fmt.Fprintf(a.out, "  map: %s\n", *c.Overland)
	}
	for _, id := range c.CharacterIDs {
		name := id
		for _, ch := range c.Characters {
			if ch.ID == id {
				name = ch.Name
			}
		}
		fmt.Fprintf(a.out, "  %s: hp %d, xp %d\n", name, c.CharacterHP[id], c.CharacterXP[id])
	}
	for _, t := range c.MapTokens {
		fmt.Fprintf(a.out, "  token %s %s %s (%.1f, %.1f)\n", t.ID, t.Icon, t.Label, t.Position.X, t.Position.Y)
	}
	for _, m := range c.MapMarkers {
		fmt.Fprintf(a.out, "  marker %s %s %s (%.1f, %.1f)\n", m.ID, m.Type.Style().Icon, m.Label, m.Position.X, m.Position.Y)
	}
	return nil
}

func (a *app) overland(ctx context.Context, args []string) error {
	if err := need(args, 1, "overland <show|map|day|token|drag|marker>"); err != nil {
		return err
	}

	ov := store.NewOverlandStore(&store.OverlandStoreConfig{Remote: a.client, Bus: a.bus})
	if err := ov.Load(ctx); err != nil {
		return err
	}

	var err error
	switch args[0] {
	case "show":
	case "map":
		if err := need(args, 2, "overland map <mapId>"); err != nil {
			return err
		}
		err = ov.SetCurrentMap(ctx, entities.MapID(args[1]))
	case "day":
		if err := need(args, 2, "overland day <next|prev>"); err != nil {
			return err
		}
		if args[1] == "prev" {
			err = ov.PrevDay(ctx)
		} else {
			err = ov.NextDay(ctx)
		}
	case "token":
		if err := need(args, 2, "overland token <icon> [label]"); err != nil {
			return err
		}
		input := &entities.TokenInput{Icon: args[1], Position: geometry.Position{X: 50, Y: 50}}
		if len(args) > 2 {
			input.Label = args[2]
		}
		_, err = ov.AddToken(ctx, input)
	case "drag":
		if err := need(args, 4, "overland drag <tokenId> <dx> <dy>"); err != nil {
			return err
		}
		err = dragToken(ctx, ov, args[1], args[2], args[3])
	case "marker":
		if err := need(args, 4, "overland marker <type> <x> <y> [label]"); err != nil {
			return err
		}
		err = placeMarker(ctx, ov, args[1:])
	default:
		return dnderr.InvalidArgumentf("unknown overland command %q", args[0])
	}
	if err != nil {
		return err
	}
	return a.printOverland(ov.State())
}

// dragToken replays a pointer drag of (dx, dy) pixels on the virtual surface
func dragToken(ctx context.Context, board drag.Board, id, dxArg, dyArg string) error {
	dx, err := strconv.ParseFloat(dxArg, 64)
	if err != nil {
		return dnderr.InvalidArgumentf("invalid dx %q", dxArg)
	}
	dy, err := strconv.ParseFloat(dyArg, 64)
	if err != nil {
		return dnderr.InvalidArgumentf("invalid dy %q", dyArg)
	}

	pos, ok := board.TokenPosition(id)
	if !ok {
		return dnderr.NotFoundf("token '%s' not found", id)
	}

	view := drag.NewViewport(geometry.Point{}, surfaceWidth, surfaceHeight)
	ctrl := drag.NewController(board, view)
	start := geometry.ToPixel(pos, view.ScreenRect())
	if !ctrl.Press(id, start) {
		return dnderr.NotFoundf("token '%s' not found", id)
	}
	defer ctrl.Release()

	return ctrl.Move(ctx, geometry.Point{X: start.X + dx, Y: start.Y + dy})
}

func placeMarker(ctx context.Context, board drag.MarkerBoard, args []string) error {
	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return dnderr.InvalidArgumentf("invalid x %q", args[1])
	}
	y, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return dnderr.InvalidArgumentf("invalid y %q", args[2])
	}
	label := ""
	if len(args) > 3 {
		label = args[3]
	}

	view := drag.NewViewport(geometry.Point{}, surfaceWidth, surfaceHeight)
	pt := geometry.ToPixel(geometry.Position{X: x, Y: y}, view.ScreenRect())
	_, err = drag.PlaceMarker(ctx, board, view, pt, entities.MarkerType(args[0]), label)
	return err
}

func (a *app) printOverland(state *entities.OverlandState) error {
	fmt.Fprintf(a.out, "map %s, day %d\n", state.CurrentMapID, state.CurrentDay)
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, t := range state.Tokens {
		fmt.Fprintf(tw, "token\t%s\t%s %s\t(%.1f, %.1f)\n", t.ID, t.Icon, t.Label, t.Position.X, t.Position.Y)
	}
	for _, m := range state.Markers {
		fmt.Fprintf(tw, "marker\t%s\t%s %s\t(%.1f, %.1f)\n", m.ID, m.Type.Style().Icon, m.Label, m.Position.X, m.Position.Y)
	}
	return tw.Flush()
}
