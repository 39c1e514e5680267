package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	mxecall "github.com/wippyai/mxe-call"
	"github.com/wippyai/mxe-call/computation"
	"github.com/wippyai/mxe-call/pda"
	"github.com/wippyai/mxe-call/schema"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.Faint)
)

func checkCommand(e *env, build cli.Flag) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "match an argument manifest against an instruction",
		ArgsUsage: "[NAME]",
		Flags: []cli.Flag{
			build,
			&cli.StringFlag{
				Name:     "args",
				Aliases:  []string{"a"},
				Usage:    "argument manifest (YAML)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "dynamic",
				Usage: "report the offending argument instead of the fixed message",
			},
		},
		Action: func(c *cli.Context) error {
			data, err := os.ReadFile(c.String("args"))
			if err != nil {
				return err
			}
			m, err := schema.ParseManifest(data)
			if err != nil {
				return err
			}

			name := c.Args().First()
			if name == "" {
				name = m.Name
			}
			if name == "" {
				return cli.Exit("no instruction name given and manifest has none", 2)
			}

			reg, err := e.registry(c)
			if err != nil {
				return err
			}
			def, err := reg.Get(name)
			if err != nil {
				return err
			}
			return runCheck(c, def, m.Args, c.Bool("dynamic"))
		},
	}
}

func runCheck(c *cli.Context, def *schema.Definition, args []computation.Argument, dynamic bool) error {
	w := c.App.Writer

	var err error
	if dynamic {
		err = def.Check(args)
	} else {
		err = def.Match(args)
	}

	var me *computation.MatchError
	if errors.As(err, &me) {
		msg := me.StaticMessage()
		if dynamic {
			msg = me.Diagnostic(args)
		}
		fmt.Fprintf(w, "%s %s: %s\n", failColor.Sprint("FAIL"), def.Name, msg)
		return cli.Exit("", 1)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s %s: %d argument(s) fill %d slot(s)\n",
		okColor.Sprint("ok"), def.Name, len(args), def.Slots())
	return nil
}

func listCommand(e *env, build cli.Flag) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "list the instructions in the build directory",
		Flags: []cli.Flag{build},
		Action: func(c *cli.Context) error {
			reg, err := e.registry(c)
			if err != nil {
				return err
			}
			if err := reg.Preload(c.Context); err != nil {
				return err
			}
			names, err := reg.Names()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(c.App.Writer)
			table.SetHeader([]string{"Name", "Offset", "Slots", "Inputs", "Outputs"})
			table.SetAutoWrapText(false)
			for _, n := range names {
				def, err := reg.Get(n)
				if err != nil {
					return err
				}
				table.Append([]string{
					def.Name,
					strconv.FormatUint(uint64(def.Offset), 10),
					strconv.Itoa(def.Slots()),
					joinParams(def.Parameters),
					joinParams(def.Outputs),
				})
			}
			table.Render()
			return nil
		},
	}
}

func offsetCommand() *cli.Command {
	return &cli.Command{
		Name:      "offset",
		Usage:     "print comp-def offsets",
		ArgsUsage: "NAME...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("at least one instruction name is required", 2)
			}
			for _, n := range c.Args().Slice() {
				fmt.Fprintf(c.App.Writer, "%s\t%d\n", n, schema.Offset(n))
			}
			return nil
		},
	}
}

func pdaCommand() *cli.Command {
	return &cli.Command{
		Name:  "pda",
		Usage: "derive the accounts a queue-computation call touches",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "program", Aliases: []string{"p"}, Usage: "MXE program address", Required: true},
			&cli.StringFlag{Name: "network", Usage: "computation-network program address", Value: pda.ArciumProgram.String()},
			&cli.Uint64Flag{Name: "offset", Usage: "computation offset"},
			&cli.StringFlag{Name: "comp-def", Usage: "instruction name for the comp-def account"},
			&cli.UintFlag{Name: "cluster", Usage: "cluster offset"},
		},
		Action: func(c *cli.Context) error {
			program, err := mxecall.ParsePubkey(c.String("program"))
			if err != nil {
				return err
			}
			network, err := mxecall.ParsePubkey(c.String("network"))
			if err != nil {
				return err
			}
			d := pda.Deriver{Network: network, MXEProgram: program}

			rows, err := deriveRows(c, d)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(c.App.Writer)
			table.SetHeader([]string{"Account", "Address"})
			table.SetAutoWrapText(false)
			table.AppendBulk(rows)
			table.Render()
			return nil
		},
	}
}

func deriveRows(c *cli.Context, d pda.Deriver) ([][]string, error) {
	type entry struct {
		name string
		fn   func() (mxecall.Pubkey, error)
	}
	entries := []entry{
		{"mxe", d.MXE},
		{"mempool", d.Mempool},
		{"execpool", d.Execpool},
		{"fee pool", d.FeePool},
		{"clock", d.Clock},
	}
	if c.IsSet("offset") {
		off := c.Uint64("offset")
		entries = append(entries, entry{"computation", func() (mxecall.Pubkey, error) { return d.Computation(off) }})
	}
	if name := c.String("comp-def"); name != "" {
		entries = append(entries, entry{"comp def " + name, func() (mxecall.Pubkey, error) { return d.CompDef(schema.Offset(name)) }})
	}
	if c.IsSet("cluster") {
		cl := uint32(c.Uint("cluster"))
		entries = append(entries, entry{"cluster", func() (mxecall.Pubkey, error) { return d.Cluster(cl) }})
	}

	rows := make([][]string, 0, len(entries)+1)
	for _, en := range entries {
		addr, err := en.fn()
		if err != nil {
			return nil, errors.Wrapf(err, "derive %s", en.name)
		}
		rows = append(rows, []string{en.name, addr.String()})
	}

	signer, bump, err := d.Signer()
	if err != nil {
		return nil, errors.Wrap(err, "derive signer")
	}
	rows = append(rows, []string{"signer", signer.String() + dimColor.Sprintf(" (bump %d)", bump)})
	return rows, nil
}

func joinParams(params []computation.Parameter) string {
	if len(params) == 0 {
		return "-"
	}
	names := make([]string, 0, len(params))
	run := 1
	for i, p := range params {
		if i+1 < len(params) && params[i+1] == p {
			run++
			continue
		}
		if run > 1 {
			names = append(names, fmt.Sprintf("%s×%d", p, run))
		} else {
			names = append(names, p.String())
		}
		run = 1
	}
	return strings.Join(names, ", ")
}
