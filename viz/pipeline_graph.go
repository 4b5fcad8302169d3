// ABOUTME: Pipeline funnel graph generation via graphviz
// ABOUTME: Renders stage nodes in funnel order with artists attached to their stage
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/inkwell-tools/roster/models"
)

// GeneratePipelineGraph builds a DOT rendering of the funnel: stage
// boxes chained in funnel order, with each artist attached to the
// stage they currently sit in. Closed artists collapse into a single
// terminal node.
func GeneratePipelineGraph(ctx context.Context, artists []models.Artist) (string, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz: %w", err)
	}
	defer func() {
		if err := gv.Close(); err != nil {
			fmt.Printf("Error closing graphviz: %v\n", err)
		}
	}()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer func() {
		if err := graph.Close(); err != nil {
			fmt.Printf("Error closing graph: %v\n", err)
		}
	}()

	graph.SetLabel("Artist Pipeline")
	graph.SetRankDir(cgraph.LRRank)

	// Stage spine
	stageNodes := make(map[string]*cgraph.Node)
	var prev *cgraph.Node
	spine := make([]string, 0, len(models.ActiveStages)+1)
	for _, s := range models.ActiveStages {
		spine = append(spine, string(s))
	}
	spine = append(spine, "Closed")

	for _, stage := range spine {
		node, err := graph.CreateNodeByName(fmt.Sprintf("stage_%s", stage))
		if err != nil {
			return "", fmt.Errorf("failed to create stage node: %w", err)
		}
		node.SetLabel(stage)
		node.SetShape("box")
		node.SetStyle("filled")
		node.SetFillColor("lightblue")
		stageNodes[stage] = node

		if prev != nil {
			edge, err := graph.CreateEdgeByName("", prev, node)
			if err != nil {
				return "", fmt.Errorf("failed to create funnel edge: %w", err)
			}
			edge.SetStyle("bold")
		}
		prev = node
	}

	// Artists hang off their current stage
	for i, artist := range artists {
		node, err := graph.CreateNodeByName(fmt.Sprintf("artist_%d_%s", i, artist.ID))
		if err != nil {
			return "", fmt.Errorf("failed to create artist node: %w", err)
		}
		node.SetLabel(fmt.Sprintf("%s\n(%s)", artist.Name, artist.ArtType))
		node.SetShape("ellipse")
		node.SetStyle("filled")
		node.SetFillColor(artistColor(artist))

		stage := "Closed"
		if !artist.Status.IsClosed() {
			stage = string(artist.Status)
		}
		target, ok := stageNodes[stage]
		if !ok {
			target = stageNodes[string(models.StageDiscovered)]
		}

		edge, err := graph.CreateEdgeByName("", node, target)
		if err != nil {
			return "", fmt.Errorf("failed to create artist edge: %w", err)
		}
		edge.SetStyle("dashed")
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}

	return buf.String(), nil
}

// artistColor picks the artist's primary platform color, falling back
// to a neutral fill for unknown or missing platforms.
func artistColor(artist models.Artist) string {
	if len(artist.Profiles) > 0 {
		if info, ok := models.LookupPlatform(artist.Profiles[0].Platform); ok {
			return info.HexColor
		}
	}
	return "lightgreen"
}
