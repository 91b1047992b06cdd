package commands

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/empowerchain/eventwire/schema"
)

type fieldInfo struct {
	Number   int32  `yaml:"number"`
	Name     string `yaml:"name"`
	JSONName string `yaml:"json_name,omitempty"`
	Type     string `yaml:"type"`
	Repeated bool   `yaml:"repeated,omitempty"`
}

type messageInfo struct {
	Name   string      `yaml:"name"`
	Fields []fieldInfo `yaml:"fields"`
}

func describeMessage(msg *schema.Message) messageInfo {
	return messageInfo{
		Name: msg.Name,
		Fields: lo.Map(msg.SortedFields(), func(f *schema.Field, _ int) fieldInfo {
			return fieldInfo{
				Number:   f.Number,
				Name:     f.Name,
				JSONName: f.JsonName,
				Type:     string(f.Type),
				Repeated: f.IsRepeated(),
			}
		}),
	}
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

var describeCmd = &cobra.Command{
	Use:   "describe <type>...",
	Short: "Show the fields of message types",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		infos := make([]messageInfo, 0, len(args))
		for _, name := range args {
			msg, err := ew.Describe(name)
			if err != nil {
				return err
			}
			infos = append(infos, describeMessage(msg))
		}
		out, err := yaml.Marshal(infos)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
