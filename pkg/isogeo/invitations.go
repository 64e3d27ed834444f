package isogeo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/geoapis/go-isogeo/pkg/models"
)

// InvitationsService handles workgroup invitations.
type InvitationsService service

// Get returns one invitation.
func (s *InvitationsService) Get(ctx context.Context, invitationID string) (*models.WorkgroupInvitation, error) {
	if err := checkUUID("invitation", invitationID); err != nil {
		return nil, err
	}

	req, err := s.client.newRequest(ctx, http.MethodGet,
		fmt.Sprintf("invitations/%s", invitationID), nil, nil)
	if err != nil {
		return nil, err
	}

	var invitation models.WorkgroupInvitation
	if _, err := s.client.do(req, &invitation); err != nil {
		return nil, err
	}
	return &invitation, nil
}

// Create sends an invitation to join a workgroup.
func (s *InvitationsService) Create(ctx context.Context, workgroupID string, invitation *models.WorkgroupInvitation) (*models.WorkgroupInvitation, error) {
	if err := checkUUID("workgroup", workgroupID); err != nil {
		return nil, err
	}
	if invitation.Email == "" || invitation.Role == "" {
		return nil, fmt.Errorf("an invitation requires an email and a role")
	}

	payload := struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}{invitation.Email, invitation.Role}

	req, err := s.client.newRequest(ctx, http.MethodPost,
		fmt.Sprintf("groups/%s/invitations", workgroupID), nil, payload)
	if err != nil {
		return nil, err
	}

	var created models.WorkgroupInvitation
	if _, err := s.client.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Accept joins the workgroup the invitation is for.
func (s *InvitationsService) Accept(ctx context.Context, invitationID string) error {
	return s.answer(ctx, invitationID, "accept")
}

// Refuse declines an invitation.
func (s *InvitationsService) Refuse(ctx context.Context, invitationID string) error {
	return s.answer(ctx, invitationID, "refuse")
}

func (s *InvitationsService) answer(ctx context.Context, invitationID, verb string) error {
	if err := checkUUID("invitation", invitationID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodPost,
		fmt.Sprintf("invitations/%s/%s", invitationID, verb), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}

// Delete cancels a pending invitation.
func (s *InvitationsService) Delete(ctx context.Context, invitationID string) error {
	if err := checkUUID("invitation", invitationID); err != nil {
		return err
	}

	req, err := s.client.newRequest(ctx, http.MethodDelete,
		fmt.Sprintf("invitations/%s", invitationID), nil, nil)
	if err != nil {
		return err
	}
	_, err = s.client.do(req, nil)
	return err
}
