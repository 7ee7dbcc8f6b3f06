package callback

import "fmt"

// Kind identifies one federate ambassador callback.
type Kind uint16

const (
	Kind_NONE Kind = iota

	Kind_ConnectionLost
	Kind_ReportFederationExecutions
	Kind_ReportFederationExecutionMembers
	Kind_ReportFederationExecutionDoesNotExist
	Kind_FederateResigned
	Kind_SynchronizationPointRegistrationSucceeded
	Kind_SynchronizationPointRegistrationFailed
	Kind_AnnounceSynchronizationPoint
	Kind_FederationSynchronized
	Kind_InitiateFederateSave
	Kind_InitiateFederateSaveWithTime
	Kind_FederationSaved
	Kind_FederationNotSaved
	Kind_FederationSaveStatusResponse
	Kind_RequestFederationRestoreSucceeded
	Kind_RequestFederationRestoreFailed
	Kind_FederationRestoreBegun
	Kind_InitiateFederateRestore
	Kind_FederationRestored
	Kind_FederationNotRestored
	Kind_FederationRestoreStatusResponse
	Kind_StartRegistrationForObjectClass
	Kind_StopRegistrationForObjectClass
	Kind_TurnInteractionsOn
	Kind_TurnInteractionsOff
	Kind_ObjectInstanceNameReservationSucceeded
	Kind_ObjectInstanceNameReservationFailed
	Kind_MultipleObjectInstanceNameReservationSucceeded
	Kind_MultipleObjectInstanceNameReservationFailed
	Kind_DiscoverObjectInstance
	Kind_DiscoverObjectInstanceWithProducingFederate
	Kind_ReflectAttributeValues
	Kind_ReflectAttributeValuesWithTime
	Kind_ReflectAttributeValuesWithTimeAndRetraction
	Kind_ReceiveInteraction
	Kind_ReceiveInteractionWithTime
	Kind_ReceiveInteractionWithTimeAndRetraction
	Kind_RemoveObjectInstance
	Kind_RemoveObjectInstanceWithTime
	Kind_RemoveObjectInstanceWithTimeAndRetraction
	Kind_AttributesInScope
	Kind_AttributesOutOfScope
	Kind_ProvideAttributeValueUpdate
	Kind_TurnUpdatesOnForObjectInstance
	Kind_TurnUpdatesOnForObjectInstanceWithRate
	Kind_TurnUpdatesOffForObjectInstance
	Kind_ConfirmAttributeTransportationTypeChange
	Kind_ReportAttributeTransportationType
	Kind_ConfirmInteractionTransportationTypeChange
	Kind_ReportInteractionTransportationType
	Kind_RequestAttributeOwnershipAssumption
	Kind_RequestDivestitureConfirmation
	Kind_AttributeOwnershipAcquisitionNotification
	Kind_AttributeOwnershipUnavailable
	Kind_RequestAttributeOwnershipRelease
	Kind_ConfirmAttributeOwnershipAcquisitionCancellation
	Kind_InformAttributeOwnership
	Kind_AttributeIsNotOwned
	Kind_AttributeIsOwnedByRTI
	Kind_TimeRegulationEnabled
	Kind_TimeConstrainedEnabled
	Kind_TimeAdvanceGrant
	Kind_RequestRetraction

	kindCount
)

// kindNames is indexed by Kind, in declaration order.
var kindNames = [kindCount]string{
	"NONE",
	"ConnectionLost",
	"ReportFederationExecutions",
	"ReportFederationExecutionMembers",
	"ReportFederationExecutionDoesNotExist",
	"FederateResigned",
	"SynchronizationPointRegistrationSucceeded",
	"SynchronizationPointRegistrationFailed",
	"AnnounceSynchronizationPoint",
	"FederationSynchronized",
	"InitiateFederateSave",
	"InitiateFederateSaveWithTime",
	"FederationSaved",
	"FederationNotSaved",
	"FederationSaveStatusResponse",
	"RequestFederationRestoreSucceeded",
	"RequestFederationRestoreFailed",
	"FederationRestoreBegun",
	"InitiateFederateRestore",
	"FederationRestored",
	"FederationNotRestored",
	"FederationRestoreStatusResponse",
	"StartRegistrationForObjectClass",
	"StopRegistrationForObjectClass",
	"TurnInteractionsOn",
	"TurnInteractionsOff",
	"ObjectInstanceNameReservationSucceeded",
	"ObjectInstanceNameReservationFailed",
	"MultipleObjectInstanceNameReservationSucceeded",
	"MultipleObjectInstanceNameReservationFailed",
	"DiscoverObjectInstance",
	"DiscoverObjectInstanceWithProducingFederate",
	"ReflectAttributeValues",
	"ReflectAttributeValuesWithTime",
	"ReflectAttributeValuesWithTimeAndRetraction",
	"ReceiveInteraction",
	"ReceiveInteractionWithTime",
	"ReceiveInteractionWithTimeAndRetraction",
	"RemoveObjectInstance",
	"RemoveObjectInstanceWithTime",
	"RemoveObjectInstanceWithTimeAndRetraction",
	"AttributesInScope",
	"AttributesOutOfScope",
	"ProvideAttributeValueUpdate",
	"TurnUpdatesOnForObjectInstance",
	"TurnUpdatesOnForObjectInstanceWithRate",
	"TurnUpdatesOffForObjectInstance",
	"ConfirmAttributeTransportationTypeChange",
	"ReportAttributeTransportationType",
	"ConfirmInteractionTransportationTypeChange",
	"ReportInteractionTransportationType",
	"RequestAttributeOwnershipAssumption",
	"RequestDivestitureConfirmation",
	"AttributeOwnershipAcquisitionNotification",
	"AttributeOwnershipUnavailable",
	"RequestAttributeOwnershipRelease",
	"ConfirmAttributeOwnershipAcquisitionCancellation",
	"InformAttributeOwnership",
	"AttributeIsNotOwned",
	"AttributeIsOwnedByRTI",
	"TimeRegulationEnabled",
	"TimeConstrainedEnabled",
	"TimeAdvanceGrant",
	"RequestRetraction",
}

func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("Kind(%d)", uint16(k))
	}
	return kindNames[k]
}

// Valid reports whether k names a catalogued operation.
func (k Kind) Valid() bool {
	return k != Kind_NONE && k < kindCount
}
