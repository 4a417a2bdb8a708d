package cli

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/prun-cogm/internal/domain/cost"
)

// costNode is one line of a cost breakdown tree
type costNode struct {
	Label    string
	Detail   string
	Amount   float64
	Children []*costNode
}

// TreeFormatter renders cost breakdowns as an indented tree
type TreeFormatter struct {
	useColors bool
}

// NewTreeFormatter creates a new tree formatter
func NewTreeFormatter(useColors bool) *TreeFormatter {
	return &TreeFormatter{useColors: useColors}
}

// FormatTree renders a breakdown tree
func (f *TreeFormatter) FormatTree(root *costNode) string {
	if root == nil {
		return "(empty breakdown)"
	}

	var builder strings.Builder
	f.formatNode(&builder, root, "", true, true)
	return builder.String()
}

// formatNode recursively formats a node and its children
func (f *TreeFormatter) formatNode(builder *strings.Builder, node *costNode, prefix string, isLast bool, isRoot bool) {
	var linePrefix string
	if isRoot {
		linePrefix = ""
	} else if isLast {
		linePrefix = prefix + "└── "
	} else {
		linePrefix = prefix + "├── "
	}

	detail := ""
	if node.Detail != "" {
		detail = " (" + node.Detail + ")"
	}

	builder.WriteString(fmt.Sprintf("%s%s%s%s: %s%s\n",
		linePrefix,
		f.labelColor(isRoot, len(node.Children) > 0),
		node.Label,
		f.colorReset(),
		formatMoney(node.Amount),
		detail,
	))

	if len(node.Children) > 0 {
		var childPrefix string
		if isRoot {
			childPrefix = ""
		} else if isLast {
			childPrefix = prefix + "    "
		} else {
			childPrefix = prefix + "│   "
		}

		for i, child := range node.Children {
			f.formatNode(builder, child, childPrefix, i == len(node.Children)-1, false)
		}
	}
}

// labelColor returns the ANSI color for a node label
func (f *TreeFormatter) labelColor(isRoot, hasChildren bool) string {
	if !f.useColors {
		return ""
	}
	switch {
	case isRoot:
		return "\033[1m" // Bold
	case hasChildren:
		return "\033[36m" // Cyan
	default:
		return ""
	}
}

// colorReset returns ANSI reset code
func (f *TreeFormatter) colorReset() string {
	if !f.useColors {
		return ""
	}
	return "\033[0m"
}

func inputNodes(inputs []cost.CalculatedInput) []*costNode {
	nodes := make([]*costNode, 0, len(inputs))
	for _, in := range inputs {
		nodes = append(nodes, &costNode{
			Label:  in.ItemSymbol,
			Detail: fmt.Sprintf("%s × %s", formatQuantity(in.Quantity), formatMoney(in.Price)),
			Amount: in.Total,
		})
	}
	return nodes
}

func workforceNodes(workforce cost.CalculatedWorkforceCosts) []*costNode {
	nodes := make([]*costNode, 0, len(workforce.Needs))
	for _, need := range workforce.Needs {
		nodes = append(nodes, &costNode{
			Label:    string(need.WorkforceType),
			Detail:   fmt.Sprintf("%d workers", need.Count),
			Amount:   need.Total,
			Children: inputNodes(need.Inputs),
		})
	}
	return nodes
}

// recipeCostTree builds the breakdown of one recipe run
func recipeCostTree(c *cost.CalculatedRecipeCost) *costNode {
	return &costNode{
		Label:  c.RecipeSymbol,
		Detail: fmt.Sprintf("%s, efficiency %s", formatDuration(c.Duration), formatPercent(c.Efficiency)),
		Amount: c.Total,
		Children: []*costNode{
			{Label: "Inputs", Amount: c.InputCosts.Total, Children: inputNodes(c.InputCosts.Inputs)},
			{Label: "Workforce", Amount: c.WorkforceCosts.Total, Children: workforceNodes(c.WorkforceCosts)},
			{
				Label:    "Repair",
				Detail:   fmt.Sprintf("%d days since repair", c.RepairCosts.DaysSinceRepair),
				Amount:   c.RepairCosts.Total,
				Children: inputNodes(c.RepairCosts.Inputs),
			},
		},
	}
}

// cogmTree builds the per-unit breakdown of one output
func cogmTree(c *cost.CalculatedRecipeOutputCOGM) *costNode {
	return &costNode{
		Label:  c.ItemSymbol + " per unit",
		Detail: fmt.Sprintf("%s of %s", formatQuantity(c.OutputQuantity), c.RecipeSymbol),
		Amount: c.Total,
		Children: []*costNode{
			{Label: "Inputs", Amount: c.InputCosts.Total, Children: inputNodes(c.InputCosts.Inputs)},
			{Label: "Workforce", Amount: c.WorkforceCosts.Total, Children: workforceNodes(c.WorkforceCosts)},
			{Label: "Repair", Amount: c.RepairCosts.Total, Children: inputNodes(c.RepairCosts.Inputs)},
		},
	}
}
