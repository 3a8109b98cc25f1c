package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/skyreserve/booking-system/internal/activities"
	"github.com/skyreserve/booking-system/internal/pricing"
	"github.com/skyreserve/booking-system/pkg/models"
)

// stepOrder is the strictly linear wizard. Forward moves one step at a time,
// back moves only to the immediately preceding step.
var stepOrder = []models.CheckoutStep{
	models.StepPassengerInfo,
	models.StepExtras,
	models.StepSeatSelection,
	models.StepPayment,
	models.StepConfirmation,
}

// CheckoutWorkflow drives one booking wizard session. It reacts to signals
// from the API, exposes its state (including the live total) through a query,
// and on the terminal advance commits the booking: simulated payment, then
// persistence, then a confirmation notice.
func CheckoutWorkflow(ctx workflow.Context, input models.CheckoutWorkflowInput) (*models.CheckoutResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Checkout session started", "sessionId", input.SessionID, "flight", input.Offer.FlightNumber)

	activityOpts := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOpts)

	var (
		stepIdx   int
		passenger models.Passenger
		extras    models.Extras
		seat      string
		status    = models.CheckoutStatusInProgress
		bookingID string
	)

	currentState := func() models.CheckoutState {
		return models.CheckoutState{
			SessionID: input.SessionID,
			Step:      stepOrder[stepIdx],
			Status:    status,
			Passenger: passenger,
			Extras:    extras,
			Seat:      seat,
			Total:     pricing.Quote(input.Offer.Price, extras, seat),
			BookingID: bookingID,
		}
	}

	if err := workflow.SetQueryHandler(ctx, models.QueryGetState, func() (models.CheckoutState, error) {
		return currentState(), nil
	}); err != nil {
		return nil, err
	}

	setPassengerCh := workflow.GetSignalChannel(ctx, models.SignalSetPassenger)
	setExtrasCh := workflow.GetSignalChannel(ctx, models.SignalSetExtras)
	selectSeatCh := workflow.GetSignalChannel(ctx, models.SignalSelectSeat)
	advanceCh := workflow.GetSignalChannel(ctx, models.SignalAdvance)
	backCh := workflow.GetSignalChannel(ctx, models.SignalBack)
	cancelCh := workflow.GetSignalChannel(ctx, models.SignalCancel)

	for status == models.CheckoutStatusInProgress {
		selector := workflow.NewSelector(ctx)

		selector.AddReceive(setPassengerCh, func(c workflow.ReceiveChannel, more bool) {
			var signal models.SetPassengerSignal
			c.Receive(ctx, &signal)
			passenger = signal.Passenger
		})

		selector.AddReceive(setExtrasCh, func(c workflow.ReceiveChannel, more bool) {
			var signal models.SetExtrasSignal
			c.Receive(ctx, &signal)
			extras = signal.Extras
			logger.Info("Extras updated", "baggage", extras.Baggage, "insurance", extras.Insurance)
		})

		selector.AddReceive(selectSeatCh, func(c workflow.ReceiveChannel, more bool) {
			var signal models.SelectSeatSignal
			c.Receive(ctx, &signal)
			seat = signal.Seat
			logger.Info("Seat selected", "seat", seat)
		})

		selector.AddReceive(advanceCh, func(c workflow.ReceiveChannel, more bool) {
			c.Receive(ctx, nil)

			// Forward progress from seat selection requires a chosen seat.
			if stepOrder[stepIdx] == models.StepSeatSelection && seat == "" {
				logger.Info("Advance blocked: no seat selected")
				return
			}

			if stepOrder[stepIdx] != models.StepConfirmation {
				stepIdx++
				return
			}

			// Terminal advance: commit the booking.
			status = models.CheckoutStatusProcessing
			total := pricing.Quote(input.Offer.Price, extras, seat)

			err := workflow.ExecuteActivity(ctx, "ProcessPayment", activities.ProcessPaymentInput{
				SessionID: input.SessionID,
				Amount:    total,
				Currency:  input.Offer.Currency,
			}).Get(ctx, nil)
			if err != nil {
				logger.Error("Payment activity failed", "error", err)
				status = models.CheckoutStatusInProgress
				return
			}

			var persisted activities.PersistBookingResult
			err = workflow.ExecuteActivity(ctx, "PersistBooking", activities.PersistBookingInput{
				Offer:     input.Offer,
				Passenger: passenger,
				Extras:    extras,
				Seat:      seat,
				Total:     total,
			}).Get(ctx, &persisted)
			if err != nil {
				logger.Error("Failed to persist booking", "error", err)
				status = models.CheckoutStatusInProgress
				return
			}
			bookingID = persisted.BookingID

			workflow.ExecuteActivity(ctx, "SendConfirmation", activities.SendConfirmationInput{
				BookingID: bookingID,
				Email:     passenger.Email,
				Route:     input.Offer.Origin + " - " + input.Offer.Destination,
				Seat:      seat,
				Group:     pricing.BoardingGroup(seat),
			}).Get(ctx, nil)

			status = models.CheckoutStatusConfirmed
			logger.Info("Checkout confirmed", "bookingId", bookingID)
		})

		selector.AddReceive(backCh, func(c workflow.ReceiveChannel, more bool) {
			c.Receive(ctx, nil)
			if stepIdx > 0 {
				stepIdx--
			}
		})

		selector.AddReceive(cancelCh, func(c workflow.ReceiveChannel, more bool) {
			c.Receive(ctx, nil)
			status = models.CheckoutStatusCancelled
			logger.Info("Checkout cancelled", "sessionId", input.SessionID)
		})

		selector.Select(ctx)

		if ctx.Err() != nil {
			return &models.CheckoutResult{
				Confirmed: false,
				Reason:    "cancelled",
			}, nil
		}
	}

	if status == models.CheckoutStatusConfirmed {
		return &models.CheckoutResult{
			Confirmed: true,
			BookingID: bookingID,
		}, nil
	}
	return &models.CheckoutResult{
		Confirmed: false,
		Reason:    string(status),
	}, nil
}
