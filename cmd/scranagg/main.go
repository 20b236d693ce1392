// SPDX-License-Identifier: MIT

// Command scranagg runs the aggregation kernels over CSV inputs and prints
// YAML reports.
package main

import "github.com/libscran/scran-aggregate/cmd/scranagg/cmd"

func main() {
	cmd.Execute()
}
