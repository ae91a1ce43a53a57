package notificationservice

import (
	"context"
	"fmt"
)

// Canned title/message pairs for lifecycle events. These are formatting
// conveniences, not a pub/sub layer; callers treat failures as best-effort.

func (s *Service) NotifyOrderCreated(ctx context.Context, orderID, orderTitle, managerID string) error {
	_, err := s.Create(ctx, managerID,
		"Order Created Successfully!",
		fmt.Sprintf("Your group order %q has been created and is now live.", orderTitle),
		TypeSuccess,
		"/orders/"+orderID,
	)
	return err
}

// NotifyOrderJoined notifies both sides: the manager learns about the new
// participant, the participant gets a confirmation.
func (s *Service) NotifyOrderJoined(ctx context.Context, orderID, orderTitle, participantUserID, managerID string) error {
	if _, err := s.Create(ctx, managerID,
		"New Participant Joined!",
		fmt.Sprintf("Someone has joined your order %q.", orderTitle),
		TypeInfo,
		"/orders/"+orderID,
	); err != nil {
		return err
	}

	_, err := s.Create(ctx, participantUserID,
		"Order Joined Successfully!",
		fmt.Sprintf("You've joined the group order %q.", orderTitle),
		TypeSuccess,
		"/orders/"+orderID,
	)
	return err
}

func (s *Service) NotifyPaymentVerified(ctx context.Context, orderID, orderTitle, participantUserID string) error {
	_, err := s.Create(ctx, participantUserID,
		"Payment Verified!",
		fmt.Sprintf("Your payment for %q has been verified by the order manager.", orderTitle),
		TypeSuccess,
		"/orders/"+orderID,
	)
	return err
}

func (s *Service) NotifyOrderDeadline(ctx context.Context, orderID, orderTitle string, userIDs []string) error {
	for _, userID := range userIDs {
		if _, err := s.Create(ctx, userID,
			"Order Deadline Approaching!",
			fmt.Sprintf("The deadline for %q is approaching. Complete your payment soon!", orderTitle),
			TypeWarning,
			"/orders/"+orderID,
		); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) NotifyOrderCompleted(ctx context.Context, orderID, orderTitle string, userIDs []string) error {
	for _, userID := range userIDs {
		if _, err := s.Create(ctx, userID,
			"Order Completed!",
			fmt.Sprintf("The group order %q has been completed successfully!", orderTitle),
			TypeSuccess,
			"/orders/"+orderID,
		); err != nil {
			return err
		}
	}
	return nil
}
