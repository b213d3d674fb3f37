package generator

import (
	"fmt"
	"strings"

	"github.com/WolfzTech/MaterialDesignInXamlToolkit/internal/brush"
	"github.com/WolfzTech/MaterialDesignInXamlToolkit/internal/tree"
)

const accessorHeader = `//------------------------------------------------------------------------------
// <auto-generated>
//     This code was generated by brushgen.
//
//     Changes to this file may cause incorrect behavior and will be lost
//     if the code is regenerated.
// </auto-generated>
//------------------------------------------------------------------------------

#nullable enable
using System.Windows.Media;

namespace MaterialDesignThemes.Wpf;

`

// GenerateAccessorClass renders the strongly-typed accessor class from
// the brush tree. The traversal is depth-first pre-order: each node
// emits its color properties, then one property per child (named by the
// child with a plural 's' suffix, default-initialized), then each
// child's class declaration nested in the same order. The root node has
// no class of its own; its members land directly in the outer Theme
// class.
func GenerateAccessorClass(root *tree.Item[brush.Brush]) string {
	var sb strings.Builder
	sb.WriteString(accessorHeader)
	sb.WriteString("public partial class Theme\n{\n")
	writeMembers(&sb, root, 1)
	sb.WriteString("}\n")
	return sb.String()
}

func writeMembers(sb *strings.Builder, node *tree.Item[brush.Brush], depth int) {
	indent := strings.Repeat("    ", depth)

	for _, b := range node.Values {
		fmt.Fprintf(sb, "%spublic Color %s { get; set; }\n", indent, b.PropertyName())
	}
	for _, child := range node.Children {
		fmt.Fprintf(sb, "%spublic %s %ss { get; set; } = new();\n", indent, child.Name, child.Name)
	}
	for _, child := range node.Children {
		fmt.Fprintf(sb, "\n%spublic class %s\n%s{\n", indent, child.Name, indent)
		writeMembers(sb, child, depth+1)
		fmt.Fprintf(sb, "%s}\n", indent)
	}
}
