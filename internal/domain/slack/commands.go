package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdMembers   CommandType = "members"
	CmdFleets    CommandType = "fleets"
	CmdTimeOffs  CommandType = "timeoffs"
	CmdAvailable CommandType = "available"
	CmdPost      CommandType = "post"
	CmdHelp      CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw:  text,
		Args: parts[1:],
	}

	switch strings.ToLower(parts[0]) {
	case "membros", "members", "ls":
		cmd.Type = CmdMembers
	case "frotas", "fleets", "rota":
		cmd.Type = CmdFleets
	case "folgas", "timeoffs":
		cmd.Type = CmdTimeOffs
	case "disponiveis", "disponíveis", "available":
		cmd.Type = CmdAvailable
	case "publicar", "post":
		cmd.Type = CmdPost
	case "ajuda", "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("comando desconhecido: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Comandos disponíveis:*

*Equipe:*
• ` + "`/rotafacil membros`" + ` - Lista os colaboradores cadastrados
• ` + "`/rotafacil folgas`" + ` - Mostra a escala de folgas semanais
• ` + "`/rotafacil disponiveis motorista 2024-06-10`" + ` - Lista quem está livre na função e data (data opcional, padrão hoje)

*Frotas:*
• ` + "`/rotafacil frotas [AAAA-MM-DD]`" + ` - Mostra a rota do dia (padrão hoje)
• ` + "`/rotafacil publicar [AAAA-MM-DD]`" + ` - Publica a rota do dia no canal configurado`
}
