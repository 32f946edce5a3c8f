// Command app is the command-line front end for the delivery order manager:
// it loads the catalog and the flat files, then runs one verb against them.
//
// Verbs:
//
//	catalog              print the loaded product catalog
//	agents [add|remove]  list or edit the delivery agents
//	validate <csv>       import an orders file and report per-row validity
//	reexport <in> <out>  import an orders file and re-export it normalized
package main

import (
	"fmt"
	"os"
	"strings"

	"deliverymanager/cmd"
	"deliverymanager/internal/core/domain/model/order"

	"go.uber.org/zap"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot initialize logger:", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	configs := cmd.GetConfigs()
	root, err := cmd.NewCompositionRoot(configs, log)
	if err != nil {
		log.Error("startup failed", zap.Error(err))
		os.Exit(1)
	}

	if err := run(root, os.Args[1:]); err != nil {
		log.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(root *cmd.CompositionRoot, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: app <catalog|agents|validate|reexport> [args]")
	}

	switch args[0] {
	case "catalog":
		return runCatalog(root)
	case "agents":
		return runAgents(root, args[1:])
	case "validate":
		if len(args) != 2 {
			return fmt.Errorf("usage: app validate <orders.csv>")
		}
		return runValidate(root, args[1])
	case "reexport":
		if len(args) != 3 {
			return fmt.Errorf("usage: app reexport <in.csv> <out.csv>")
		}
		return runReexport(root, args[1], args[2])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runCatalog(root *cmd.CompositionRoot) error {
	catalog := root.Catalog()
	for _, code := range catalog.Codes() {
		p, _ := catalog.Resolve(code)
		fmt.Printf("%-4s %-24s %12s / %s\n", p.Code(), p.Name(), p.Price().Format(), p.Unit())
	}
	return nil
}

func runAgents(root *cmd.CompositionRoot, args []string) error {
	agents := root.Agents()

	if len(args) == 0 {
		for _, name := range agents.List() {
			fmt.Println(name)
		}
		return nil
	}

	switch args[0] {
	case "add":
		if len(args) != 2 {
			return fmt.Errorf("usage: app agents add <name>")
		}
		return agents.Add(args[1])
	case "remove":
		if len(args) != 2 {
			return fmt.Errorf("usage: app agents remove <name>")
		}
		return agents.Remove(args[1])
	default:
		return fmt.Errorf("unknown agents subcommand %q", args[0])
	}
}

func runValidate(root *cmd.CompositionRoot, path string) error {
	imported, err := root.CreateOrderImporter().Import(path, root.Catalog())
	if err != nil {
		return err
	}

	invalid := 0
	for _, row := range imported {
		if !row.Invalid {
			continue
		}
		invalid++
		fmt.Printf("row %d (%s): %s\n", row.Row, row.Order.ClientName(), strings.Join(row.Messages, "; "))
	}
	fmt.Printf("%d rows, %d flagged\n", len(imported), invalid)
	return nil
}

func runReexport(root *cmd.CompositionRoot, inPath, outPath string) error {
	imported, err := root.CreateOrderImporter().Import(inPath, root.Catalog())
	if err != nil {
		return err
	}

	orders := make([]*order.Order, 0, len(imported))
	for _, row := range imported {
		orders = append(orders, row.Order)
	}

	return root.CreateOrderExporter().Export(outPath, orders, root.Catalog())
}
