package rtierrors

// Kind identifies one exception of the HLA Federate Protocol catalogue.
type Kind uint16

const (
	kindUnknown Kind = iota

	AlreadyConnected
	AsynchronousDeliveryAlreadyDisabled
	AsynchronousDeliveryAlreadyEnabled
	AttributeAcquisitionWasNotCanceled
	AttributeAcquisitionWasNotRequested
	AttributeAlreadyBeingAcquired
	AttributeAlreadyBeingChanged
	AttributeAlreadyBeingDivested
	AttributeAlreadyOwned
	AttributeDivestitureWasNotRequested
	AttributeNotDefined
	AttributeNotOwned
	AttributeNotPublished
	AttributeNotRecognized
	AttributeNotSubscribed
	AttributeRelevanceAdvisorySwitchIsOff
	AttributeRelevanceAdvisorySwitchIsOn
	AttributeScopeAdvisorySwitchIsOff
	AttributeScopeAdvisorySwitchIsOn
	CallNotAllowedFromWithinCallback
	ConnectionFailed
	CouldNotCreateLogicalTimeFactory
	CouldNotDecode
	CouldNotEncode
	CouldNotOpenFDD
	CouldNotOpenMIM
	DeletePrivilegeNotHeld
	DesignatorIsHLAstandardMIM
	ErrorReadingFDD
	ErrorReadingMIM
	FederateAlreadyExecutionMember
	FederateHandleNotKnown
	FederateHasNotBegunSave
	FederateInternalError
	FederateIsExecutionMember
	FederateNameAlreadyInUse
	FederateNotExecutionMember
	FederateOwnsAttributes
	FederateServiceInvocationsAreBeingReportedViaMOM
	FederateUnableToUseTime
	FederatesCurrentlyJoined
	FederationExecutionAlreadyExists
	FederationExecutionDoesNotExist
	IllegalName
	IllegalTimeArithmetic
	InTimeAdvancingState
	InconsistentFDD
	InteractionClassAlreadyBeingChanged
	InteractionClassNotDefined
	InteractionClassNotPublished
	InteractionClassNotRecognized
	InteractionClassNotSubscribed
	InteractionParameterNotDefined
	InteractionParameterNotRecognized
	InteractionRelevanceAdvisorySwitchIsOff
	InteractionRelevanceAdvisorySwitchIsOn
	InvalidAttributeHandle
	InvalidCredentials
	InvalidDimensionHandle
	InvalidFederateHandle
	InvalidInteractionClassHandle
	InvalidLocalSettingsDesignator
	InvalidLogicalTime
	InvalidLogicalTimeInterval
	InvalidLookahead
	InvalidMIM
	InvalidMessageRetractionHandle
	InvalidObjectClassHandle
	InvalidOrderName
	InvalidOrderType
	InvalidParameterHandle
	InvalidRangeBound
	InvalidRegion
	InvalidRegionContext
	InvalidResignAction
	InvalidServiceGroup
	InvalidTransportationName
	InvalidTransportationType
	InvalidUpdateRateDesignator
	LogicalTimeAlreadyPassed
	MessageCanNoLongerBeRetracted
	NameNotFound
	NameSetWasEmpty
	NoAcquisitionPending
	NoRequestToEnableTimeConstrainedWasPending
	NoRequestToEnableTimeRegulationWasPending
	NotConnected
	ObjectClassNotDefined
	ObjectClassNotKnown
	ObjectClassNotPublished
	ObjectClassRelevanceAdvisorySwitchIsOff
	ObjectClassRelevanceAdvisorySwitchIsOn
	ObjectInstanceNameInUse
	ObjectInstanceNameNotReserved
	ObjectInstanceNotKnown
	OwnershipAcquisitionPending
	RTIinternalError
	RegionDoesNotContainSpecifiedDimension
	RegionInUseForUpdateOrSubscription
	RegionNotCreatedByThisFederate
	RequestForTimeConstrainedPending
	RequestForTimeRegulationPending
	RestoreInProgress
	RestoreNotInProgress
	RestoreNotRequested
	SaveInProgress
	SaveNotInProgress
	SaveNotInitiated
	SynchronizationPointLabelNotAnnounced
	TimeConstrainedAlreadyEnabled
	TimeConstrainedIsNotEnabled
	TimeRegulationAlreadyEnabled
	TimeRegulationIsNotEnabled
	Unauthorized
	UnsupportedCallbackModel

	kindCount
)

// kindNames is indexed by Kind, in declaration order.
var kindNames = [kindCount]string{
	"",
	"AlreadyConnected",
	"AsynchronousDeliveryAlreadyDisabled",
	"AsynchronousDeliveryAlreadyEnabled",
	"AttributeAcquisitionWasNotCanceled",
	"AttributeAcquisitionWasNotRequested",
	"AttributeAlreadyBeingAcquired",
	"AttributeAlreadyBeingChanged",
	"AttributeAlreadyBeingDivested",
	"AttributeAlreadyOwned",
	"AttributeDivestitureWasNotRequested",
	"AttributeNotDefined",
	"AttributeNotOwned",
	"AttributeNotPublished",
	"AttributeNotRecognized",
	"AttributeNotSubscribed",
	"AttributeRelevanceAdvisorySwitchIsOff",
	"AttributeRelevanceAdvisorySwitchIsOn",
	"AttributeScopeAdvisorySwitchIsOff",
	"AttributeScopeAdvisorySwitchIsOn",
	"CallNotAllowedFromWithinCallback",
	"ConnectionFailed",
	"CouldNotCreateLogicalTimeFactory",
	"CouldNotDecode",
	"CouldNotEncode",
	"CouldNotOpenFDD",
	"CouldNotOpenMIM",
	"DeletePrivilegeNotHeld",
	"DesignatorIsHLAstandardMIM",
	"ErrorReadingFDD",
	"ErrorReadingMIM",
	"FederateAlreadyExecutionMember",
	"FederateHandleNotKnown",
	"FederateHasNotBegunSave",
	"FederateInternalError",
	"FederateIsExecutionMember",
	"FederateNameAlreadyInUse",
	"FederateNotExecutionMember",
	"FederateOwnsAttributes",
	"FederateServiceInvocationsAreBeingReportedViaMOM",
	"FederateUnableToUseTime",
	"FederatesCurrentlyJoined",
	"FederationExecutionAlreadyExists",
	"FederationExecutionDoesNotExist",
	"IllegalName",
	"IllegalTimeArithmetic",
	"InTimeAdvancingState",
	"InconsistentFDD",
	"InteractionClassAlreadyBeingChanged",
	"InteractionClassNotDefined",
	"InteractionClassNotPublished",
	"InteractionClassNotRecognized",
	"InteractionClassNotSubscribed",
	"InteractionParameterNotDefined",
	"InteractionParameterNotRecognized",
	"InteractionRelevanceAdvisorySwitchIsOff",
	"InteractionRelevanceAdvisorySwitchIsOn",
	"InvalidAttributeHandle",
	"InvalidCredentials",
	"InvalidDimensionHandle",
	"InvalidFederateHandle",
	"InvalidInteractionClassHandle",
	"InvalidLocalSettingsDesignator",
	"InvalidLogicalTime",
	"InvalidLogicalTimeInterval",
	"InvalidLookahead",
	"InvalidMIM",
	"InvalidMessageRetractionHandle",
	"InvalidObjectClassHandle",
	"InvalidOrderName",
	"InvalidOrderType",
	"InvalidParameterHandle",
	"InvalidRangeBound",
	"InvalidRegion",
	"InvalidRegionContext",
	"InvalidResignAction",
	"InvalidServiceGroup",
	"InvalidTransportationName",
	"InvalidTransportationType",
	"InvalidUpdateRateDesignator",
	"LogicalTimeAlreadyPassed",
	"MessageCanNoLongerBeRetracted",
	"NameNotFound",
	"NameSetWasEmpty",
	"NoAcquisitionPending",
	"NoRequestToEnableTimeConstrainedWasPending",
	"NoRequestToEnableTimeRegulationWasPending",
	"NotConnected",
	"ObjectClassNotDefined",
	"ObjectClassNotKnown",
	"ObjectClassNotPublished",
	"ObjectClassRelevanceAdvisorySwitchIsOff",
	"ObjectClassRelevanceAdvisorySwitchIsOn",
	"ObjectInstanceNameInUse",
	"ObjectInstanceNameNotReserved",
	"ObjectInstanceNotKnown",
	"OwnershipAcquisitionPending",
	"RTIinternalError",
	"RegionDoesNotContainSpecifiedDimension",
	"RegionInUseForUpdateOrSubscription",
	"RegionNotCreatedByThisFederate",
	"RequestForTimeConstrainedPending",
	"RequestForTimeRegulationPending",
	"RestoreInProgress",
	"RestoreNotInProgress",
	"RestoreNotRequested",
	"SaveInProgress",
	"SaveNotInProgress",
	"SaveNotInitiated",
	"SynchronizationPointLabelNotAnnounced",
	"TimeConstrainedAlreadyEnabled",
	"TimeConstrainedIsNotEnabled",
	"TimeRegulationAlreadyEnabled",
	"TimeRegulationIsNotEnabled",
	"Unauthorized",
	"UnsupportedCallbackModel",
}
