package usecase

import (
	"strings"

	"monitor-srv/internal/model"
	"monitor-srv/pkg/locale"
)

// template is one subject/body pair. Placeholders use {name} syntax; the
// base shipment fields are substituted in both subject and body, additional
// data only in the body.
type template struct {
	Subject string
	Body    string
}

// templateData carries the values substituted into a template.
type templateData struct {
	ShipmentID  string
	Origin      string
	Destination string
	Container   string
	TrackingURL string
	Extra       map[string]string
}

// placeholderTemplateData returns render data with neutral route fields, for
// callers that have no shipment row at hand.
func placeholderTemplateData(shipmentID, trackingURL string) templateData {
	return templateData{
		ShipmentID:  shipmentID,
		Origin:      "Origin Port",
		Destination: "Destination Port",
		Container:   "N/A",
		TrackingURL: trackingURL,
	}
}

// resolveTemplate returns the template for the type in the requested
// language, falling back to English when that language has no entry.
func resolveTemplate(typ model.NotificationType, lang string) (template, bool) {
	if byType, ok := templatesByLang[lang]; ok {
		if t, ok := byType[typ]; ok {
			return t, true
		}
	}
	t, ok := templatesEN[typ]
	return t, ok
}

// renderTemplate substitutes the base fields into subject and body, then the
// extra keys into the body only. Unknown placeholders are left as-is.
func renderTemplate(t template, data templateData) (subject, body string) {
	base := strings.NewReplacer(
		"{shipment_id}", data.ShipmentID,
		"{origin}", data.Origin,
		"{destination}", data.Destination,
		"{container}", data.Container,
		"{tracking_url}", data.TrackingURL,
	)

	subject = base.Replace(t.Subject)
	body = base.Replace(t.Body)
	for key, value := range data.Extra {
		body = strings.ReplaceAll(body, "{"+key+"}", value)
	}
	return subject, body
}

var templatesByLang = map[string]map[model.NotificationType]template{
	locale.EN: templatesEN,
	locale.ES: templatesES,
	locale.ZH: templatesZH,
}

var templatesEN = map[model.NotificationType]template{
	model.NotificationTypeDeparted: {
		Subject: "Your shipment {shipment_id} has departed",
		Body: `Dear Customer,

Your shipment {shipment_id} has departed from {origin} and is now on its way to {destination}.

Shipment Details:
- Shipment ID: {shipment_id}
- Container: {container}
- Origin: {origin}
- Destination: {destination}

Track your shipment: {tracking_url}

Best regards,
CW Logistics Team
`,
	},
	model.NotificationTypeInTransit: {
		Subject: "Shipment {shipment_id} is in transit",
		Body: `Dear Customer,

Your shipment {shipment_id} is currently in transit from {origin} to {destination}.

Current Status: In Transit
Container: {container}

Track your shipment: {tracking_url}

Best regards,
CW Logistics Team
`,
	},
	model.NotificationTypeArrived: {
		Subject: "Shipment {shipment_id} has arrived at {destination}",
		Body: `Dear Customer,

Great news! Your shipment {shipment_id} has arrived at {destination}.

Shipment Details:
- Shipment ID: {shipment_id}
- Container: {container}
- Destination: {destination}

Next steps: The shipment will proceed to customs clearance.

Track your shipment: {tracking_url}

Best regards,
CW Logistics Team
`,
	},
	model.NotificationTypeCustomsCleared: {
		Subject: "Shipment {shipment_id} cleared customs",
		Body: `Dear Customer,

Your shipment {shipment_id} has successfully cleared customs and is being prepared for final delivery.

Shipment Details:
- Shipment ID: {shipment_id}
- Container: {container}
- Location: {destination}

Your shipment will be delivered soon.

Track your shipment: {tracking_url}

Best regards,
CW Logistics Team
`,
	},
	model.NotificationTypeDelivered: {
		Subject: "Shipment {shipment_id} has been delivered",
		Body: `Dear Customer,

Your shipment {shipment_id} has been successfully delivered!

Shipment Details:
- Shipment ID: {shipment_id}
- Container: {container}
- Delivered to: {destination}

Thank you for choosing CW Logistics.

Track your shipment: {tracking_url}

Best regards,
CW Logistics Team
`,
	},
	model.NotificationTypeDelayed: {
		Subject: "Important: Shipment {shipment_id} may be delayed",
		Body: `Dear Customer,

We want to inform you that your shipment {shipment_id} may experience a delay.

Shipment Details:
- Shipment ID: {shipment_id}
- Container: {container}
- Route: {origin} to {destination}

Reason: {delay_reason}

We are working to minimize the impact and will keep you updated.

Track your shipment: {tracking_url}

Best regards,
CW Logistics Team
`,
	},
	model.NotificationTypeException: {
		Subject: "Attention: Exception for shipment {shipment_id}",
		Body: `Dear Customer,

An exception has been detected for your shipment {shipment_id}.

Shipment Details:
- Shipment ID: {shipment_id}
- Container: {container}
- Issue: {exception_details}

Our team is investigating and will provide updates soon.

Track your shipment: {tracking_url}

Best regards,
CW Logistics Team
`,
	},
}

var templatesES = map[model.NotificationType]template{
	model.NotificationTypeDeparted: {
		Subject: "Su envío {shipment_id} ha partido",
		Body: `Estimado cliente:

Su envío {shipment_id} ha partido de {origin} y está en camino hacia {destination}.

Detalles del envío:
- ID del envío: {shipment_id}
- Contenedor: {container}
- Origen: {origin}
- Destino: {destination}

Siga su envío: {tracking_url}

Atentamente,
Equipo de CW Logistics
`,
	},
	model.NotificationTypeInTransit: {
		Subject: "El envío {shipment_id} está en tránsito",
		Body: `Estimado cliente:

Su envío {shipment_id} se encuentra actualmente en tránsito de {origin} a {destination}.

Estado actual: En tránsito
Contenedor: {container}

Siga su envío: {tracking_url}

Atentamente,
Equipo de CW Logistics
`,
	},
	model.NotificationTypeArrived: {
		Subject: "El envío {shipment_id} ha llegado a {destination}",
		Body: `Estimado cliente:

¡Buenas noticias! Su envío {shipment_id} ha llegado a {destination}.

Detalles del envío:
- ID del envío: {shipment_id}
- Contenedor: {container}
- Destino: {destination}

Próximos pasos: el envío procederá al despacho de aduanas.

Siga su envío: {tracking_url}

Atentamente,
Equipo de CW Logistics
`,
	},
	model.NotificationTypeCustomsCleared: {
		Subject: "El envío {shipment_id} superó el despacho de aduanas",
		Body: `Estimado cliente:

Su envío {shipment_id} ha superado con éxito el despacho de aduanas y se está preparando para la entrega final.

Detalles del envío:
- ID del envío: {shipment_id}
- Contenedor: {container}
- Ubicación: {destination}

Su envío será entregado pronto.

Siga su envío: {tracking_url}

Atentamente,
Equipo de CW Logistics
`,
	},
	model.NotificationTypeDelivered: {
		Subject: "El envío {shipment_id} ha sido entregado",
		Body: `Estimado cliente:

¡Su envío {shipment_id} ha sido entregado con éxito!

Detalles del envío:
- ID del envío: {shipment_id}
- Contenedor: {container}
- Entregado en: {destination}

Gracias por elegir CW Logistics.

Siga su envío: {tracking_url}

Atentamente,
Equipo de CW Logistics
`,
	},
	model.NotificationTypeDelayed: {
		Subject: "Importante: el envío {shipment_id} podría retrasarse",
		Body: `Estimado cliente:

Queremos informarle de que su envío {shipment_id} podría experimentar un retraso.

Detalles del envío:
- ID del envío: {shipment_id}
- Contenedor: {container}
- Ruta: de {origin} a {destination}

Motivo: {delay_reason}

Estamos trabajando para minimizar el impacto y le mantendremos informado.

Siga su envío: {tracking_url}

Atentamente,
Equipo de CW Logistics
`,
	},
	model.NotificationTypeException: {
		Subject: "Atención: incidencia en el envío {shipment_id}",
		Body: `Estimado cliente:

Se ha detectado una incidencia en su envío {shipment_id}.

Detalles del envío:
- ID del envío: {shipment_id}
- Contenedor: {container}
- Incidencia: {exception_details}

Nuestro equipo está investigando y le informaremos pronto.

Siga su envío: {tracking_url}

Atentamente,
Equipo de CW Logistics
`,
	},
}

var templatesZH = map[model.NotificationType]template{
	model.NotificationTypeDeparted: {
		Subject: "您的货运 {shipment_id} 已启运",
		Body: `尊敬的客户：

您的货运 {shipment_id} 已从{origin}启运，正在前往{destination}。

货运详情：
- 货运编号：{shipment_id}
- 集装箱：{container}
- 起运地：{origin}
- 目的地：{destination}

追踪您的货运：{tracking_url}

此致
CW Logistics 团队
`,
	},
	model.NotificationTypeInTransit: {
		Subject: "货运 {shipment_id} 运输中",
		Body: `尊敬的客户：

您的货运 {shipment_id} 目前正在从{origin}运往{destination}的途中。

当前状态：运输中
集装箱：{container}

追踪您的货运：{tracking_url}

此致
CW Logistics 团队
`,
	},
	model.NotificationTypeArrived: {
		Subject: "货运 {shipment_id} 已抵达{destination}",
		Body: `尊敬的客户：

好消息！您的货运 {shipment_id} 已抵达{destination}。

货运详情：
- 货运编号：{shipment_id}
- 集装箱：{container}
- 目的地：{destination}

后续安排：货物将进入清关流程。

追踪您的货运：{tracking_url}

此致
CW Logistics 团队
`,
	},
	model.NotificationTypeCustomsCleared: {
		Subject: "货运 {shipment_id} 已完成清关",
		Body: `尊敬的客户：

您的货运 {shipment_id} 已顺利完成清关，正在安排最终派送。

货运详情：
- 货运编号：{shipment_id}
- 集装箱：{container}
- 所在地：{destination}

您的货物即将送达。

追踪您的货运：{tracking_url}

此致
CW Logistics 团队
`,
	},
	model.NotificationTypeDelivered: {
		Subject: "货运 {shipment_id} 已送达",
		Body: `尊敬的客户：

您的货运 {shipment_id} 已成功送达！

货运详情：
- 货运编号：{shipment_id}
- 集装箱：{container}
- 送达地点：{destination}

感谢您选择 CW Logistics。

追踪您的货运：{tracking_url}

此致
CW Logistics 团队
`,
	},
	model.NotificationTypeDelayed: {
		Subject: "重要提醒：货运 {shipment_id} 可能延误",
		Body: `尊敬的客户：

我们谨在此通知您，您的货运 {shipment_id} 可能会出现延误。

货运详情：
- 货运编号：{shipment_id}
- 集装箱：{container}
- 运输路线：{origin} 至 {destination}

原因：{delay_reason}

我们正在努力减少影响，并将随时向您通报最新情况。

追踪您的货运：{tracking_url}

此致
CW Logistics 团队
`,
	},
	model.NotificationTypeException: {
		Subject: "注意：货运 {shipment_id} 出现异常",
		Body: `尊敬的客户：

您的货运 {shipment_id} 检测到异常情况。

货运详情：
- 货运编号：{shipment_id}
- 集装箱：{container}
- 问题：{exception_details}

我们的团队正在调查，并会尽快向您通报进展。

追踪您的货运：{tracking_url}

此致
CW Logistics 团队
`,
	},
}
