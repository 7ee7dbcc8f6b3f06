package call

import "fmt"

// Kind is the discriminant shared by a call request and its response.
type Kind uint16

const (
	Kind_NONE Kind = iota

	Kind_Connect
	Kind_Disconnect
	Kind_EnableCallbacks
	Kind_DisableCallbacks
	Kind_CreateFederationExecution
	Kind_CreateFederationExecutionWithMIM
	Kind_DestroyFederationExecution
	Kind_ListFederationExecutions
	Kind_ListFederationExecutionMembers
	Kind_JoinFederationExecution
	Kind_ResignFederationExecution
	Kind_RegisterFederationSynchronizationPoint
	Kind_SynchronizationPointAchieved
	Kind_RequestFederationSave
	Kind_FederateSaveBegun
	Kind_FederateSaveComplete
	Kind_FederateSaveNotComplete
	Kind_AbortFederationSave
	Kind_QueryFederationSaveStatus
	Kind_RequestFederationRestore
	Kind_FederateRestoreComplete
	Kind_FederateRestoreNotComplete
	Kind_AbortFederationRestore
	Kind_QueryFederationRestoreStatus
	Kind_PublishObjectClassAttributes
	Kind_UnpublishObjectClass
	Kind_UnpublishObjectClassAttributes
	Kind_PublishInteractionClass
	Kind_UnpublishInteractionClass
	Kind_SubscribeObjectClassAttributes
	Kind_UnsubscribeObjectClass
	Kind_UnsubscribeObjectClassAttributes
	Kind_SubscribeInteractionClass
	Kind_UnsubscribeInteractionClass
	Kind_ReserveObjectInstanceName
	Kind_ReleaseObjectInstanceName
	Kind_ReserveMultipleObjectInstanceNames
	Kind_ReleaseMultipleObjectInstanceNames
	Kind_RegisterObjectInstance
	Kind_UpdateAttributeValues
	Kind_SendInteraction
	Kind_DeleteObjectInstance
	Kind_LocalDeleteObjectInstance
	Kind_RequestAttributeValueUpdate
	Kind_RequestAttributeTransportationTypeChange
	Kind_QueryAttributeTransportationType
	Kind_RequestInteractionTransportationTypeChange
	Kind_QueryInteractionTransportationType
	Kind_UnconditionalAttributeOwnershipDivestiture
	Kind_NegotiatedAttributeOwnershipDivestiture
	Kind_ConfirmDivestiture
	Kind_AttributeOwnershipAcquisition
	Kind_AttributeOwnershipAcquisitionIfAvailable
	Kind_AttributeOwnershipReleaseDenied
	Kind_AttributeOwnershipDivestitureIfWanted
	Kind_CancelNegotiatedAttributeOwnershipDivestiture
	Kind_CancelAttributeOwnershipAcquisition
	Kind_QueryAttributeOwnership
	Kind_IsAttributeOwnedByFederate
	Kind_EnableTimeRegulation
	Kind_DisableTimeRegulation
	Kind_EnableTimeConstrained
	Kind_DisableTimeConstrained
	Kind_TimeAdvanceRequest
	Kind_TimeAdvanceRequestAvailable
	Kind_NextMessageRequest
	Kind_NextMessageRequestAvailable
	Kind_FlushQueueRequest
	Kind_EnableAsynchronousDelivery
	Kind_DisableAsynchronousDelivery
	Kind_QueryGALT
	Kind_QueryLogicalTime
	Kind_QueryLITS
	Kind_ModifyLookahead
	Kind_QueryLookahead
	Kind_Retract
	Kind_ChangeAttributeOrderType
	Kind_ChangeInteractionOrderType
	Kind_CreateRegion
	Kind_CommitRegionModifications
	Kind_DeleteRegion
	Kind_RegisterObjectInstanceWithRegions
	Kind_AssociateRegionsForUpdates
	Kind_UnassociateRegionsForUpdates
	Kind_SubscribeObjectClassAttributesWithRegions
	Kind_UnsubscribeObjectClassAttributesWithRegions
	Kind_SubscribeInteractionClassWithRegions
	Kind_UnsubscribeInteractionClassWithRegions
	Kind_SendInteractionWithRegions
	Kind_RequestAttributeValueUpdateWithRegions
	Kind_GetAutomaticResignDirective
	Kind_SetAutomaticResignDirective
	Kind_GetFederateHandle
	Kind_GetFederateName
	Kind_GetObjectClassHandle
	Kind_GetObjectClassName
	Kind_GetKnownObjectClassHandle
	Kind_GetObjectInstanceHandle
	Kind_GetObjectInstanceName
	Kind_GetAttributeHandle
	Kind_GetAttributeName
	Kind_GetUpdateRateValue
	Kind_GetUpdateRateValueForAttribute
	Kind_GetInteractionClassHandle
	Kind_GetInteractionClassName
	Kind_GetParameterHandle
	Kind_GetParameterName
	Kind_GetOrderType
	Kind_GetOrderName
	Kind_GetTransportationTypeHandle
	Kind_GetTransportationTypeName
	Kind_GetAvailableDimensionsForClassAttribute
	Kind_GetAvailableDimensionsForInteractionClass
	Kind_GetDimensionHandle
	Kind_GetDimensionName
	Kind_GetDimensionUpperBound
	Kind_GetDimensionHandleSet
	Kind_GetRangeBounds
	Kind_SetRangeBounds
	Kind_NormalizeFederateHandle
	Kind_NormalizeServiceGroup
	Kind_EnableObjectClassRelevanceAdvisorySwitch
	Kind_DisableObjectClassRelevanceAdvisorySwitch
	Kind_EnableAttributeRelevanceAdvisorySwitch
	Kind_DisableAttributeRelevanceAdvisorySwitch
	Kind_EnableAttributeScopeAdvisorySwitch
	Kind_DisableAttributeScopeAdvisorySwitch
	Kind_EnableInteractionRelevanceAdvisorySwitch
	Kind_DisableInteractionRelevanceAdvisorySwitch

	kindCount
)

// kindNames is indexed by Kind, in declaration order.
var kindNames = [kindCount]string{
	"NONE",
	"Connect",
	"Disconnect",
	"EnableCallbacks",
	"DisableCallbacks",
	"CreateFederationExecution",
	"CreateFederationExecutionWithMIM",
	"DestroyFederationExecution",
	"ListFederationExecutions",
	"ListFederationExecutionMembers",
	"JoinFederationExecution",
	"ResignFederationExecution",
	"RegisterFederationSynchronizationPoint",
	"SynchronizationPointAchieved",
	"RequestFederationSave",
	"FederateSaveBegun",
	"FederateSaveComplete",
	"FederateSaveNotComplete",
	"AbortFederationSave",
	"QueryFederationSaveStatus",
	"RequestFederationRestore",
	"FederateRestoreComplete",
	"FederateRestoreNotComplete",
	"AbortFederationRestore",
	"QueryFederationRestoreStatus",
	"PublishObjectClassAttributes",
	"UnpublishObjectClass",
	"UnpublishObjectClassAttributes",
	"PublishInteractionClass",
	"UnpublishInteractionClass",
	"SubscribeObjectClassAttributes",
	"UnsubscribeObjectClass",
	"UnsubscribeObjectClassAttributes",
	"SubscribeInteractionClass",
	"UnsubscribeInteractionClass",
	"ReserveObjectInstanceName",
	"ReleaseObjectInstanceName",
	"ReserveMultipleObjectInstanceNames",
	"ReleaseMultipleObjectInstanceNames",
	"RegisterObjectInstance",
	"UpdateAttributeValues",
	"SendInteraction",
	"DeleteObjectInstance",
	"LocalDeleteObjectInstance",
	"RequestAttributeValueUpdate",
	"RequestAttributeTransportationTypeChange",
	"QueryAttributeTransportationType",
	"RequestInteractionTransportationTypeChange",
	"QueryInteractionTransportationType",
	"UnconditionalAttributeOwnershipDivestiture",
	"NegotiatedAttributeOwnershipDivestiture",
	"ConfirmDivestiture",
	"AttributeOwnershipAcquisition",
	"AttributeOwnershipAcquisitionIfAvailable",
	"AttributeOwnershipReleaseDenied",
	"AttributeOwnershipDivestitureIfWanted",
	"CancelNegotiatedAttributeOwnershipDivestiture",
	"CancelAttributeOwnershipAcquisition",
	"QueryAttributeOwnership",
	"IsAttributeOwnedByFederate",
	"EnableTimeRegulation",
	"DisableTimeRegulation",
	"EnableTimeConstrained",
	"DisableTimeConstrained",
	"TimeAdvanceRequest",
	"TimeAdvanceRequestAvailable",
	"NextMessageRequest",
	"NextMessageRequestAvailable",
	"FlushQueueRequest",
	"EnableAsynchronousDelivery",
	"DisableAsynchronousDelivery",
	"QueryGALT",
	"QueryLogicalTime",
	"QueryLITS",
	"ModifyLookahead",
	"QueryLookahead",
	"Retract",
	"ChangeAttributeOrderType",
	"ChangeInteractionOrderType",
	"CreateRegion",
	"CommitRegionModifications",
	"DeleteRegion",
	"RegisterObjectInstanceWithRegions",
	"AssociateRegionsForUpdates",
	"UnassociateRegionsForUpdates",
	"SubscribeObjectClassAttributesWithRegions",
	"UnsubscribeObjectClassAttributesWithRegions",
	"SubscribeInteractionClassWithRegions",
	"UnsubscribeInteractionClassWithRegions",
	"SendInteractionWithRegions",
	"RequestAttributeValueUpdateWithRegions",
	"GetAutomaticResignDirective",
	"SetAutomaticResignDirective",
	"GetFederateHandle",
	"GetFederateName",
	"GetObjectClassHandle",
	"GetObjectClassName",
	"GetKnownObjectClassHandle",
	"GetObjectInstanceHandle",
	"GetObjectInstanceName",
	"GetAttributeHandle",
	"GetAttributeName",
	"GetUpdateRateValue",
	"GetUpdateRateValueForAttribute",
	"GetInteractionClassHandle",
	"GetInteractionClassName",
	"GetParameterHandle",
	"GetParameterName",
	"GetOrderType",
	"GetOrderName",
	"GetTransportationTypeHandle",
	"GetTransportationTypeName",
	"GetAvailableDimensionsForClassAttribute",
	"GetAvailableDimensionsForInteractionClass",
	"GetDimensionHandle",
	"GetDimensionName",
	"GetDimensionUpperBound",
	"GetDimensionHandleSet",
	"GetRangeBounds",
	"SetRangeBounds",
	"NormalizeFederateHandle",
	"NormalizeServiceGroup",
	"EnableObjectClassRelevanceAdvisorySwitch",
	"DisableObjectClassRelevanceAdvisorySwitch",
	"EnableAttributeRelevanceAdvisorySwitch",
	"DisableAttributeRelevanceAdvisorySwitch",
	"EnableAttributeScopeAdvisorySwitch",
	"DisableAttributeScopeAdvisorySwitch",
	"EnableInteractionRelevanceAdvisorySwitch",
	"DisableInteractionRelevanceAdvisorySwitch",
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
