/*
Copyright © 2026 SONiC Project
SPDX-License-Identifier: Apache-2.0
*/
package main

import "github.com/sonic-net/reboot-cause/pkg/cli"

func main() {
	cli.Execute()
}
