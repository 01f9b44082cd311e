package voice

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/contract"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/entity"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/observability"
)

const (
	ToolAddStop    = "addDeliveryStop"
	ToolRemoveStop = "removeDeliveryStop"
	ToolListStops  = "listCurrentStops"
)

// toolErrorMessage is the only failure detail the model ever sees
const toolErrorMessage = "Erro ao executar comando no aplicativo."

// SystemInstruction sets up the assistant persona in Brazilian Portuguese
const SystemInstruction = `Você é um assistente logístico útil e eficiente para o aplicativo "RotaFácil".
Ajude o motorista a gerenciar sua lista de entregas diárias.
Seja conciso, pois o usuário pode estar dirigindo.
Fale português do Brasil de forma natural.
Quando o usuário pedir para adicionar uma parada, pergunte os detalhes necessários se faltarem.
Sempre confirme a ação verbalmente ("Certo, adicionei a parada para...").`

var errUnknownTool = errors.New("unknown tool")

// FunctionDeclarations returns the actions the model may call
func FunctionDeclarations() []FunctionDeclaration {
	return []FunctionDeclaration{
		{
			Name: ToolAddStop,
			Parameters: &Schema{
				Type:        "OBJECT",
				Description: "Adiciona uma nova parada de entrega na rota atual.",
				Properties: map[string]*Schema{
					"customerName": {Type: "STRING", Description: "Nome do cliente."},
					"address":      {Type: "STRING", Description: "Endereço completo da entrega."},
					"notes":        {Type: "STRING", Description: "Observações opcionais sobre a entrega (ex: pacote frágil, deixar na portaria)."},
				},
				Required: []string{"customerName", "address"},
			},
		},
		{
			Name: ToolRemoveStop,
			Parameters: &Schema{
				Type:        "OBJECT",
				Description: "Remove uma parada de entrega existente pelo nome do cliente.",
				Properties: map[string]*Schema{
					"customerName": {Type: "STRING", Description: "Nome do cliente da parada a ser removida."},
				},
				Required: []string{"customerName"},
			},
		},
		{
			Name: ToolListStops,
			Parameters: &Schema{
				Type:        "OBJECT",
				Description: "Lista todas as paradas da rota atual.",
				Properties:  map[string]*Schema{},
			},
		},
	}
}

type stopSummary struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Status  string `json:"status"`
}

// dispatch runs one function call against the stop book. It never fails:
// bad arguments, unknown names and panics all become the generic error
// acknowledgment.
func dispatch(stops contract.StopBook, call FunctionCall) (resp FunctionResponse) {
	resp = FunctionResponse{ID: call.ID, Name: call.Name}

	defer func() {
		if r := recover(); r != nil {
			resp.Response = map[string]any{"error": toolErrorMessage}
			observability.RecordToolCall(call.Name, false)
		}
	}()

	result, err := runTool(stops, call)
	if err != nil {
		resp.Response = map[string]any{"error": toolErrorMessage}
		observability.RecordToolCall(call.Name, false)
		return resp
	}
	resp.Response = result
	observability.RecordToolCall(call.Name, true)
	return resp
}

func runTool(stops contract.StopBook, call FunctionCall) (map[string]any, error) {
	if stops == nil {
		return nil, errors.New("no stop book attached")
	}

	switch call.Name {
	case ToolAddStop:
		var args entity.AddStopArgs
		if err := decodeArgs(call.Args, &args); err != nil {
			return nil, err
		}
		stop, err := stops.AddStop(args)
		if err != nil {
			return nil, err
		}
		return map[string]any{"result": fmt.Sprintf("Parada para %s adicionada com sucesso.", stop.CustomerName)}, nil

	case ToolRemoveStop:
		var args entity.RemoveStopArgs
		if err := decodeArgs(call.Args, &args); err != nil {
			return nil, err
		}
		if args.CustomerName == "" {
			return nil, errors.New("customerName is required")
		}
		stops.RemoveStop(args.CustomerName)
		return map[string]any{"result": fmt.Sprintf("Tentativa de remover parada de %s realizada.", args.CustomerName)}, nil

	case ToolListStops:
		summary := lo.Map(stops.ListStops(), func(s entity.DeliveryStop, _ int) stopSummary {
			return stopSummary{Name: s.CustomerName, Address: s.Address, Status: string(s.Status)}
		})
		data, err := json.Marshal(summary)
		if err != nil {
			return nil, err
		}
		return map[string]any{"stops": string(data)}, nil

	default:
		return nil, fmt.Errorf("%w: %s", errUnknownTool, call.Name)
	}
}

func decodeArgs(raw json.RawMessage, target any) error {
	if len(raw) == 0 {
		return errors.New("missing arguments")
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("malformed arguments: %w", err)
	}
	return nil
}
