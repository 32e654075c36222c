// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/chain"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/migration"
	"github.com/bitmark-inc/kittyd/storage"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "migrate", "dump", "fund":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  migrate                             - bring kitty records to the current layout and exit\n")
		fmt.Printf("\n")

		fmt.Printf("  dump [FILE]                         - write all kitties as JSON to stdout/file\n")
		fmt.Printf("\n")

		fmt.Printf("  fund ACCOUNT AMOUNT                 - add AMOUNT to the balance of ACCOUNT\n")
		fmt.Printf("                                        only on the %q and %q chains\n", chain.Testing, chain.Local)
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		b, err := json.Marshal(options)
		if err != nil {
			exitwithstatus.Message("error: %s", err)
		}
		var out bytes.Buffer
		json.Indent(&out, b, "", "  ")
		out.WriteTo(os.Stdout)
		os.Stdout.WriteString("\n")

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the storage, ledger and ownership are enabled so these commands can
// access and/or change the database
func processDataCommand(log *logger.L, arguments []string, options *Configuration, report migration.Report, balances ledger.Ledger) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "migrate":
		// already run during startup
		s, err := json.MarshalIndent(report, "", "  ")
		if nil != err {
			exitwithstatus.Message("migration report JSON error: %s", err)
		}
		fmt.Printf("%s\n", s)

	case "dump":
		output := "-"
		if len(arguments) > 0 {
			output = strings.TrimSpace(arguments[0])
		}
		fd := os.Stdout

		var err error
		if output != "" && output != "-" {
			fd, err = os.Create(output)
			if nil != err {
				exitwithstatus.Message("error: creating: %q error: %s", output, err)
			}
		}

		n, err := dumpKitties(fd)
		fd.Close()
		if nil != err {
			exitwithstatus.Message("dump error: %s", err)
		}
		log.Infof("dumped: %d kitties", n)

	case "fund":
		if !chain.AllowsFunding(options.Chain) {
			exitwithstatus.Message("error: fund is not allowed on chain: %q", options.Chain)
		}
		if len(arguments) < 2 {
			exitwithstatus.Message("missing account or amount argument")
		}

		a, err := account.FromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("error in account: %q  error: %s", arguments[0], err)
		}
		amount, err := strconv.ParseUint(arguments[1], 10, 64)
		if nil != err {
			exitwithstatus.Message("error in amount: %s", err)
		}

		trx, err := storage.NewDBTransaction()
		if nil != err {
			exitwithstatus.Message("database error: %s", err)
		}
		err = balances.Deposit(trx, a, amount)
		if nil != err {
			trx.Abort()
			exitwithstatus.Message("fund error: %s", err)
		}
		err = trx.Commit()
		if nil != err {
			exitwithstatus.Message("commit error: %s", err)
		}
		log.Infof("funded account: %s  amount: %d", a, amount)
		fmt.Printf("account: %s  balance: %d\n", a, balances.Balance(a))

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
