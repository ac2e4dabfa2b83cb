package render

import (
	"fmt"
	"io"

	"github.com/coininu/launchpad/internal/usecase"
	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderNetworks prints the configured networks as a table
func RenderNetworks(out io.Writer, result *usecase.ListNetworksResult) {
	if len(result.Networks) == 0 {
		fmt.Fprintln(out, "No networks configured in launchpad.toml")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Network", "RPC URL", "Chain ID"})

	for _, network := range result.Networks {
		chainID := "-"
		if network.ChainID != 0 {
			chainID = fmt.Sprintf("%d", network.ChainID)
		}
		rpcURL := network.RPCURL
		if rpcURL == "" {
			rpcURL = "(unresolved)"
		}
		t.AppendRow(table.Row{network.Name, rpcURL, chainID})
	}

	t.Render()
}

// RenderArtifacts prints the indexed artifacts as a table
func RenderArtifacts(out io.Writer, result *usecase.ListArtifactsResult) {
	if len(result.Artifacts) == 0 {
		fmt.Fprintln(out, "No compiled artifacts found (run the compiler first)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Contract", "Source", "Constructor Args", "Bytecode"})

	for _, artifact := range result.Artifacts {
		t.AppendRow(table.Row{
			artifact.Name,
			artifact.Source,
			artifact.ConstructorArity(),
			fmt.Sprintf("%d bytes", len(artifact.Bytecode)),
		})
	}

	t.Render()
}
