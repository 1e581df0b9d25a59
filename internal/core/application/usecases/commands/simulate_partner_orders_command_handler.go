package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SimulatePartnerOrdersCommandHandler fabricates PLACED partner events and
// feeds them through the regular ingestion path, so simulated orders flow
// through the exact pipeline real partner orders do: correlation, catalog
// price resolution, dispatch trigger.
type SimulatePartnerOrdersCommandHandler struct {
	ingestor IngestPartnerEventsCommandHandler
}

// NewSimulatePartnerOrdersCommandHandler creates a handler for order simulation.
func NewSimulatePartnerOrdersCommandHandler(ingestor IngestPartnerEventsCommandHandler) SimulatePartnerOrdersCommandHandler {
	return SimulatePartnerOrdersCommandHandler{ingestor: ingestor}
}

// Handle creates the requested number of synthetic partner orders.
func (h SimulatePartnerOrdersCommandHandler) Handle(ctx context.Context, cmd SimulatePartnerOrdersCommand) (IngestResult, error) {
	if err := cmd.Validate(); err != nil {
		return IngestResult{}, err
	}

	events := make([]RawPartnerEvent, 0, cmd.Count())
	for i := 0; i < cmd.Count(); i++ {
		events = append(events, RawPartnerEvent{
			Code:           "PLACED",
			PartnerOrderID: uuid.NewString(),
			CustomerName:   fmt.Sprintf("Simulated customer %d", i+1),
			Items:          cmd.Items(),
		})
	}

	return h.ingestor.Handle(ctx, NewIngestPartnerEventsCommand(events))
}
